// Package content holds the static catalogue shown by the showcase: brand
// details, the section order and the copy of every section.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed catalogue.toml
var embeddedCatalogue []byte

// ErrInvalidCatalogue is wrapped by every validation failure.
var ErrInvalidCatalogue = errors.New("content: invalid catalogue")

type Contact struct {
	WhatsApp string `toml:"whatsapp"`
	Email    string `toml:"email"`
	Website  string `toml:"website"`
}

type Brand struct {
	Name    string  `toml:"name"`
	Tagline string  `toml:"tagline"`
	Year    int     `toml:"year"`
	Contact Contact `toml:"contact"`
}

// SectionRef names one page of the deck, in display order.
type SectionRef struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

type Hero struct {
	Headline  string `toml:"headline"`
	Subhead   string `toml:"subhead"`
	CTA       string `toml:"cta"`
	CTATarget string `toml:"cta_target"` // Section id the CTA navigates to
}

type Module struct {
	Title string `toml:"title"`
	Desc  string `toml:"desc"`
	Icon  string `toml:"icon"`
}

type Capabilities struct {
	Title    string   `toml:"title"`
	Subtitle string   `toml:"subtitle"`
	Modules  []Module `toml:"modules"`
}

type Package struct {
	Name      string   `toml:"name"`
	Label     string   `toml:"label"`
	Price     string   `toml:"price"`
	Currency  string   `toml:"currency"`
	Suffix    string   `toml:"suffix"`
	Timeline  string   `toml:"timeline"`
	Desc      string   `toml:"desc"`
	Why       string   `toml:"why"`
	Highlight bool     `toml:"highlight"`
	Features  []string `toml:"features"`
}

// DisplayPrice renders the price the way the pricing cards show it, e.g. "₹16,500 + GST".
func (p Package) DisplayPrice() string {
	if p.Suffix == "" {
		return p.Currency + p.Price
	}
	return p.Currency + p.Price + " " + p.Suffix
}

type Pricing struct {
	Title    string    `toml:"title"`
	Subtitle string    `toml:"subtitle"`
	Packages []Package `toml:"packages"`
}

type ComparisonRow struct {
	Item string `toml:"item"`
	A    bool   `toml:"a"`
	B    bool   `toml:"b"`
}

type Comparison struct {
	Title    string          `toml:"title"`
	Subtitle string          `toml:"subtitle"`
	Headers  [3]string       `toml:"headers"`
	Rows     []ComparisonRow `toml:"rows"`
}

type Risks struct {
	Title string   `toml:"title"`
	Items []string `toml:"items"`
}

type FinalCTA struct {
	Title        string `toml:"title"`
	Subtitle     string `toml:"subtitle"`
	CTAPrimary   string `toml:"cta_primary"`
	CTASecondary string `toml:"cta_secondary"`
}

// Catalogue is the whole content tree.
type Catalogue struct {
	Brand        Brand        `toml:"brand"`
	Sections     []SectionRef `toml:"sections"`
	Hero         Hero         `toml:"hero"`
	Capabilities Capabilities `toml:"capabilities"`
	Pricing      Pricing      `toml:"pricing"`
	Comparison   Comparison   `toml:"comparison"`
	Risks        Risks        `toml:"risks"`
	FinalCTA     FinalCTA     `toml:"final_cta"`
}

// Default returns the catalogue compiled into the binary.
func Default() (*Catalogue, error) {
	return Parse(embeddedCatalogue)
}

// LoadFile reads a catalogue from disk, for deployments that override the copy.
func LoadFile(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a TOML catalogue.
func Parse(data []byte) (*Catalogue, error) {
	var c Catalogue
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return nil, fmt.Errorf("content: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %s", ErrInvalidCatalogue, undecoded[0])
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the references between parts of the catalogue.
func (c *Catalogue) Validate() error {
	if c.Brand.Name == "" {
		return fmt.Errorf("%w: brand name is empty", ErrInvalidCatalogue)
	}
	if len(c.Sections) == 0 {
		return fmt.Errorf("%w: no sections", ErrInvalidCatalogue)
	}

	seen := make(map[string]bool, len(c.Sections))
	for i, s := range c.Sections {
		if s.ID == "" || s.Name == "" {
			return fmt.Errorf("%w: section %d needs an id and a name", ErrInvalidCatalogue, i)
		}
		if seen[s.ID] {
			return fmt.Errorf("%w: duplicate section id %q", ErrInvalidCatalogue, s.ID)
		}
		seen[s.ID] = true
	}

	if c.Hero.CTATarget != "" && !seen[c.Hero.CTATarget] {
		return fmt.Errorf("%w: hero cta target %q is not a section", ErrInvalidCatalogue, c.Hero.CTATarget)
	}
	for _, p := range c.Pricing.Packages {
		if p.Name == "" {
			return fmt.Errorf("%w: pricing package without a name", ErrInvalidCatalogue)
		}
	}
	return nil
}

// SectionIndex returns the display position of the section with the given id, or -1.
func (c *Catalogue) SectionIndex(id string) int {
	for i, s := range c.Sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// PlanInquiry is the prefilled message sent when a visitor picks a plan.
func PlanInquiry(plan string) string {
	return fmt.Sprintf("Hi, I am interested in the %s plan.", plan)
}

// WhatsAppURL builds the click-to-chat link for the brand's WhatsApp number.
func (c *Catalogue) WhatsAppURL(message string) string {
	u := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + c.Brand.Contact.WhatsApp,
		RawQuery: url.Values{"text": {message}}.Encode(),
	}
	return u.String()
}

// MailtoURL builds a mailto link for the brand's email address.
func (c *Catalogue) MailtoURL() string {
	return (&url.URL{Scheme: "mailto", Opaque: c.Brand.Contact.Email}).String()
}
