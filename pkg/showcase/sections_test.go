package showcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zyxo/showcase/pkg/showcase/content"
	"github.com/zyxo/showcase/pkg/showcase/i18n"
)

type recorder struct {
	navigated []int
	opened    []string
}

func testDeps(t *testing.T) (sectionDeps, *recorder) {
	t.Helper()
	cat, err := content.Default()
	require.NoError(t, err)

	rec := &recorder{}
	return sectionDeps{
		catalogue: cat,
		loc:       i18n.Must("en"),
		navigate:  func(i int) { rec.navigated = append(rec.navigated, i) },
		open:      func(u string) { rec.opened = append(rec.opened, u) },
	}, rec
}

func TestNewSectionViewCoversCatalogue(t *testing.T) {
	deps, _ := testDeps(t)
	for _, ref := range deps.catalogue.Sections {
		_, placeholder := newSectionView(ref, deps).(*placeholderView)
		assert.False(t, placeholder, "section %q has no view", ref.ID)
	}

	v := newSectionView(content.SectionRef{ID: "faq", Name: "FAQ"}, deps)
	require.IsType(t, &placeholderView{}, v)
	assert.Nil(t, v.primary())
}

func TestHeroPrimaryNavigatesToPricing(t *testing.T) {
	deps, rec := testDeps(t)
	v := newSectionView(content.SectionRef{ID: "hero"}, deps)

	fn := v.primary()
	require.NotNil(t, fn)
	fn()
	assert.Equal(t, []int{2}, rec.navigated)
	assert.Empty(t, rec.opened)
}

func TestHeroWithoutTargetHasNoPrimary(t *testing.T) {
	deps, _ := testDeps(t)
	deps.catalogue.Hero.CTATarget = "missing"
	assert.Nil(t, newSectionView(content.SectionRef{ID: "hero"}, deps).primary())
}

func TestPricingPrimaryAsksAboutHighlightedPlan(t *testing.T) {
	deps, rec := testDeps(t)
	newSectionView(content.SectionRef{ID: "pricing"}, deps).primary()()

	require.Len(t, rec.opened, 1)
	assert.Equal(t, "https://wa.me/919746174404?text=Hi%2C+I+am+interested+in+the+Business+plan.", rec.opened[0])
}

func TestFinalPlans(t *testing.T) {
	deps, rec := testDeps(t)
	v := &finalView{deps}

	first, last := v.plans()
	assert.Equal(t, "Starter", first)
	assert.Equal(t, "Business", last)

	v.primary()()
	require.Len(t, rec.opened, 1)
	assert.Contains(t, rec.opened[0], "Starter+plan")

	deps.catalogue.Pricing.Packages = nil
	first, last = v.plans()
	assert.Equal(t, "ZYXO", first)
	assert.Equal(t, "ZYXO", last)
}

func TestInitial(t *testing.T) {
	assert.Equal(t, "B", initial("Bot", "24/7 AI Chat Agent"))
	assert.Equal(t, "P", initial("", "premium design"))
	assert.Equal(t, "•", initial("", ""))
}
