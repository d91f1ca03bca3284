package scraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"econome/internal/model"
)

// Scraper percorre as páginas de listagem de uma loja e acumula os cards
// de produto. Links já vistos são pulados para não duplicar o CSV.
type Scraper struct {
	StoreName string
	BaseURL   string
	seen      map[string]bool
}

func New(storeName, baseURL string) *Scraper {
	return &Scraper{
		StoreName: storeName,
		BaseURL:   baseURL,
		seen:      make(map[string]bool),
	}
}

// PageURL monta a URL da página N. A listagem pagina por offset, 12
// produtos por página (Nao=12 é a página 1, Nao=24 a página 2...).
func (s *Scraper) PageURL(page int) string {
	return fmt.Sprintf("%s?Nao=%d&moveTo=product-list-grid", s.BaseURL, page*12)
}

// ParseListing extrai os cards de produto do HTML de uma página.
func (s *Scraper) ParseListing(html string) ([]model.RawRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var records []model.RawRecord
	doc.Find(`div[data-test="@web/ProductCard/body"]`).Each(func(_ int, card *goquery.Selection) {
		title := card.Find(`a[data-test="product-title"]`).First()
		href, _ := title.Attr("href")
		if href == "" || s.seen[href] {
			return
		}
		s.seen[href] = true

		// "Apple - 2ct" vira "Apple": o sufixo de variante não é nome
		name := strings.TrimSpace(title.Text())
		if i := strings.Index(name, " -"); i >= 0 {
			name = name[:i]
		}

		price := strings.TrimSpace(card.Find(`span[data-test="current-price"]`).First().Text())

		records = append(records, model.RawRecord{
			StoreName:   s.StoreName,
			ProductName: name,
			URL:         href,
			Price:       price,
		})
	})

	return records, nil
}
