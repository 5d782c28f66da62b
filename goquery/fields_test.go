package goquery_test

import (
	"testing"

	"github.com/fwojciec/giftlist/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fieldsOf wraps inner in an organic result card and extracts its fields.
func fieldsOf(t *testing.T, inner, query string) goquery.Fields {
	t.Helper()

	doc, err := goquery.ParseHTML(`<html><body><article data-auto="searchOrganic">` + inner + `</article></body></html>`)
	require.NoError(t, err)

	card := doc.Find("article").First()
	require.Equal(t, 1, card.Length())
	return goquery.ExtractFields(card, query)
}

func TestExtractFields_Name(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		inner    string
		query    string
		want     string
		strategy string
	}{
		{
			name:     "title zone",
			inner:    `<div data-zone-name="title">Настольная игра Тетрис, </div><span class="title">Other</span>`,
			want:     "Настольная игра Тетрис",
			strategy: "title-zone",
		},
		{
			name:     "snippet title heading",
			inner:    `<h3 data-auto="snippet-title">Кружка керамическая.</h3>`,
			want:     "Кружка керамическая",
			strategy: "snippet-title",
		},
		{
			name:     "title link nested element",
			inner:    `<a data-zone-name="title" href="/product/1"><span>Набор   карандашей</span></a>`,
			want:     "Набор карандашей",
			strategy: "title-zone",
		},
		{
			name:     "title link after empty title zone",
			inner:    `<div data-zone-name="title"><img src="x.jpg"></div><a data-zone-name="title" href="/product/1"><h3>Лампа настольная</h3></a>`,
			want:     "Лампа настольная",
			strategy: "title-link",
		},
		{
			name:     "class title",
			inner:    `<div class="product-title">Плед флисовый --</div>`,
			want:     "Плед флисовый",
			strategy: "class-title",
		},
		{
			name:     "class link title after empty class title",
			inner:    `<div class="product-image"></div><span class="snippet-link-title">Рюкзак городской</span>`,
			want:     "Рюкзак городской",
			strategy: "class-link-title",
		},
		{
			name:     "text scan skips short text links and query",
			inner:    `<span>Хит</span><span>https://example.com</span><span>кружка с котом</span><div>Термокружка 450 мл</div>`,
			query:    "кружка с котом",
			want:     "Термокружка 450 мл",
			strategy: "text-scan",
		},
		{
			name:     "text scan query exclusion is exact",
			inner:    `<span>Кружка с котом</span>`,
			query:    "кружка с котом",
			want:     "Кружка с котом",
			strategy: "text-scan",
		},
		{
			name:  "no strategy matches",
			inner: `<span>Хит</span><img src="//img.example/x.jpg">`,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := fieldsOf(t, tt.inner, tt.query)

			assert.Equal(t, tt.want, f.Name)
			assert.Equal(t, tt.strategy, f.NameStrategy)
		})
	}
}

func TestExtractFields_Price(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		inner    string
		want     string
		strategy string
	}{
		{
			name:     "price value span",
			inner:    `<span data-auto="price-value">1 234 ₽</span>`,
			want:     "1234",
			strategy: "price-value",
		},
		{
			name:     "price value div",
			inner:    `<div data-auto="price-value">₽1&nbsp;490</div>`,
			want:     "1490",
			strategy: "price-value",
		},
		{
			name:     "class price",
			inner:    `<span class="ds-price">2 990 ₽</span>`,
			want:     "2990",
			strategy: "class-price",
		},
		{
			name:     "price scan skips text without digits",
			inner:    `<div class="cost-label">бесплатно</div><span class="cost">от 349 руб.</span>`,
			want:     "349",
			strategy: "price-scan",
		},
		{
			name:     "winner without digits is absent",
			inner:    `<span class="price">по запросу</span><span class="cost">100</span>`,
			want:     "",
			strategy: "class-price",
		},
		{
			name:  "no price",
			inner: `<div class="title">Кружка</div>`,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := fieldsOf(t, tt.inner, "")

			assert.Equal(t, tt.want, f.Price)
			assert.Equal(t, tt.strategy, f.PriceStrategy)
		})
	}
}

func TestExtractFields_PurchaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		inner    string
		want     string
		strategy string
	}{
		{
			name:     "title anchor relative path",
			inner:    `<a href="/other">x</a><a data-zone-name="title" href="/product/abc">Тетрис</a>`,
			want:     "https://market.yandex.ru/product/abc",
			strategy: "title-link",
		},
		{
			name:     "product path",
			inner:    `<a href="/brands/1">brand</a><a href="/product/abc?sku=1">item</a>`,
			want:     "https://market.yandex.ru/product/abc?sku=1",
			strategy: "product-path",
		},
		{
			name:     "class link",
			inner:    `<a class="card-link" href="https://market.yandex.ru/card/42">item</a>`,
			want:     "https://market.yandex.ru/card/42",
			strategy: "class-link",
		},
		{
			name:     "data uid",
			inner:    `<a data-uid="u1" href="/offer/7">item</a>`,
			want:     "https://market.yandex.ru/offer/7",
			strategy: "data-uid",
		},
		{
			name:     "any anchor keeps absolute href",
			inner:    `<a href="https://shop.example/item">item</a>`,
			want:     "https://shop.example/item",
			strategy: "any-link",
		},
		{
			name:     "protocol relative href",
			inner:    `<a href="//market.yandex.ru/product/9">item</a>`,
			want:     "https://market.yandex.ru/product/9",
			strategy: "product-path",
		},
		{
			name:     "blank href skipped",
			inner:    `<a data-zone-name="title" href="  ">t</a><a href="/offer/8">item</a>`,
			want:     "https://market.yandex.ru/offer/8",
			strategy: "any-link",
		},
		{
			name:  "no anchor",
			inner: `<div>Кружка</div>`,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := fieldsOf(t, tt.inner, "")

			assert.Equal(t, tt.want, f.PurchaseURL)
			assert.Equal(t, tt.strategy, f.URLStrategy)
		})
	}
}

func TestExtractFields_ImageURL(t *testing.T) {
	t.Parallel()

	t.Run("protocol relative source gets https", func(t *testing.T) {
		t.Parallel()

		f := fieldsOf(t, `<img src="//img.example/x.jpg">`, "")

		assert.Equal(t, "https://img.example/x.jpg", f.ImageURL)
	})

	t.Run("absolute source kept", func(t *testing.T) {
		t.Parallel()

		f := fieldsOf(t, `<img alt="no source"><img src="https://img.example/y.png">`, "")

		assert.Equal(t, "https://img.example/y.png", f.ImageURL)
	})

	t.Run("no image", func(t *testing.T) {
		t.Parallel()

		f := fieldsOf(t, `<div>Кружка</div>`, "")

		assert.Empty(t, f.ImageURL)
	})
}

func TestExtractFields_FieldsAreIndependent(t *testing.T) {
	t.Parallel()

	f := fieldsOf(t, `<span data-auto="price-value">590 ₽</span><a href="/product/x">?</a>`, "")

	assert.Empty(t, f.Name)
	assert.Equal(t, "590", f.Price)
	assert.Equal(t, "https://market.yandex.ru/product/x", f.PurchaseURL)
}

func TestStrategyNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{"title-zone", "snippet-title", "title-link", "class-title", "class-link-title", "text-scan"},
		goquery.StrategyNames(goquery.NameStrategies))
	assert.Equal(t,
		[]string{"price-value", "class-price", "price-scan"},
		goquery.StrategyNames(goquery.PriceStrategies))
	assert.Equal(t,
		[]string{"title-link", "product-path", "class-link", "data-uid", "any-link"},
		goquery.StrategyNames(goquery.URLStrategies))
}

func TestAbsoluteURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://market.yandex.ru/product/abc", goquery.AbsoluteURL("/product/abc"))
	assert.Equal(t, "https://cdn.example/a", goquery.AbsoluteURL("//cdn.example/a"))
	assert.Equal(t, "https://shop.example/a", goquery.AbsoluteURL(" https://shop.example/a "))
	assert.Equal(t, "", goquery.AbsoluteURL(""))
}
