package chat

import (
	"fmt"
	"strings"

	"github.com/zyxo/showcase/pkg/showcase/content"
)

// Welcome is the first message shown when the chat opens. It is not sent to the model.
const Welcome = "Hi there! I'm the ZYXO AI assistant. How can I help you build your digital asset today?"

// SystemPrompt builds the model instructions from the catalogue so answers stay in line with
// the copy shown on screen.
func SystemPrompt(c *content.Catalogue) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are the AI assistant for %s Digital Solutions.\n", c.Brand.Name)
	b.WriteString("Your goal is to help potential clients understand our services and choose the right plan.\n\n")

	fmt.Fprintf(&b, "Key Information about %s:\n", c.Brand.Name)
	fmt.Fprintf(&b, "- Name: %s\n", c.Brand.Name)
	fmt.Fprintf(&b, "- Tagline: %s\n", c.Brand.Tagline)
	fmt.Fprintf(&b, "- Contact: %s\n\n", c.Brand.Contact.Email)

	b.WriteString("Services & Capabilities:\n")
	for _, m := range c.Capabilities.Modules {
		fmt.Fprintf(&b, "- %s: %s\n", m.Title, m.Desc)
	}

	b.WriteString("\nPricing Plans:\n")
	for _, p := range c.Pricing.Packages {
		fmt.Fprintf(&b, "- %s Plan (%s):\n", p.Name, p.DisplayPrice())
		fmt.Fprintf(&b, "  - %s\n", p.Desc)
		fmt.Fprintf(&b, "  - Timeline: %s\n", p.Timeline)
		fmt.Fprintf(&b, "  - Key Features: %s\n", strings.Join(p.Features, ", "))
	}

	b.WriteString("\nImportant Details:\n")
	for _, item := range c.Risks.Items {
		fmt.Fprintf(&b, "- %s\n", item)
	}

	b.WriteString(`
Guidelines:
1. Be professional, concise, and helpful.
2. If asked about pricing, always mention the available plans.
3. If the user wants to buy or get started, encourage them to use the WhatsApp button or the plan buttons.
4. Keep answers short (under 3 sentences) as you are a chat widget.
5. Do not hallucinate features not listed above.`)

	return b.String()
}
