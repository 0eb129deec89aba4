package mapper

import (
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ONSdigital/dp-frontend-dataset-index-controller/datasetindex"
	"github.com/ONSdigital/dp-frontend-dataset-index-controller/model"
)

// collectionPathSegment marks where a dataset file URL stops being the
// collection page URL. Everything from its first occurrence onwards is
// dropped when deriving a row's link target.
const collectionPathSegment = "/files"

// notAvailable is rendered for attributes absent from a record, so column
// alignment holds across every row.
const notAvailable = "N/A"

var statColumns = []string{"Nodes", "Edges", "Unique edges", "Max edge size"}

var printer = message.NewPrinter(language.English)

// SetTaxonomyDomain will set the taxonomy domain for a given page
func SetTaxonomyDomain(p *model.Page) {
	p.TaxonomyDomain = os.Getenv("TAXONOMY_DOMAIN")
}

// CreateDatasetIndexPage maps the dataset index document to the table page
// model, one row per dataset. Rows keep the document order of the index; the
// column set is fixed and identical for every row.
func CreateDatasetIndexPage(index datasetindex.Index) model.DatasetIndexPage {
	var page model.DatasetIndexPage

	page.Metadata.Title = "Datasets"
	page.BetaBannerEnabled = true
	page.Breadcrumb = []model.TaxonomyNode{
		{
			Title: "Home",
			URI:   "/",
		},
		{
			Title: "Datasets",
			URI:   "/datasets",
		},
	}
	SetTaxonomyDomain(&page.Page)

	columns := make([]model.Column, 0, len(statColumns)+1)
	columns = append(columns, model.Column{Label: "Dataset"})
	for _, label := range statColumns {
		columns = append(columns, model.Column{Label: label})
	}
	page.Data.Columns = columns

	if index.Datasets == nil {
		return page
	}

	rows := make([]model.TableRow, 0, index.Len())
	for pair := index.Datasets.Oldest(); pair != nil; pair = pair.Next() {
		record := pair.Value
		rows = append(rows, model.TableRow{
			Name: pair.Key,
			URI:  collectionURL(record.URL),
			Cells: []string{
				formatCount(record.NumNodes),
				formatCount(record.NumEdges),
				formatCount(record.NumUniqueEdges),
				formatCount(record.MaxEdgeSize),
			},
		})
	}
	page.Data.Rows = rows

	return page
}

// collectionURL derives the collection page link from a dataset file URL by
// truncating at the first collection path segment. URLs without the segment
// are used unchanged.
func collectionURL(fileURL string) string {
	if i := strings.Index(fileURL, collectionPathSegment); i >= 0 {
		return fileURL[:i]
	}
	return fileURL
}

// formatCount renders an optional count with thousands separators. Only a
// missing attribute maps to the not-available placeholder; a recorded zero
// renders as "0".
func formatCount(v *int64) string {
	if v == nil {
		return notAvailable
	}
	return printer.Sprintf("%d", *v)
}
