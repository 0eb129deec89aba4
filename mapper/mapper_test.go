package mapper

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/ONSdigital/dp-frontend-dataset-index-controller/datasetindex"
)

func count(v int64) *int64 {
	return &v
}

func TestCreateDatasetIndexPage(t *testing.T) {

	Convey("given an index with records in a deliberately unsorted order", t, func() {
		datasets := orderedmap.New[string, datasetindex.Dataset]()
		datasets.Set("tags-ask-ubuntu", datasetindex.Dataset{
			URL:      "https://example.org/tags-ask-ubuntu/files/hyperedges.json",
			NumNodes: count(3029),
			NumEdges: count(271233),
		})
		datasets.Set("congress-bills", datasetindex.Dataset{
			URL:            "https://example.org/congress-bills/files/hyperedges.json",
			NumNodes:       count(1718),
			NumEdges:       count(260851),
			NumUniqueEdges: count(85082),
			MaxEdgeSize:    count(399),
		})
		datasets.Set("diseasome", datasetindex.Dataset{
			URL:      "https://example.org/diseasome/readme",
			NumEdges: count(0),
		})
		index := datasetindex.Index{Datasets: datasets}

		Convey("when the page model is created", func() {
			page := CreateDatasetIndexPage(index)

			Convey("then the header has the fixed column set in the fixed order", func() {
				So(page.Data.Columns, ShouldHaveLength, 5)
				So(page.Data.Columns[0].Label, ShouldEqual, "Dataset")
				So(page.Data.Columns[1].Label, ShouldEqual, "Nodes")
				So(page.Data.Columns[2].Label, ShouldEqual, "Edges")
				So(page.Data.Columns[3].Label, ShouldEqual, "Unique edges")
				So(page.Data.Columns[4].Label, ShouldEqual, "Max edge size")
			})

			Convey("then rows keep document order rather than being sorted by name", func() {
				So(page.Data.Rows, ShouldHaveLength, 3)
				So(page.Data.Rows[0].Name, ShouldEqual, "tags-ask-ubuntu")
				So(page.Data.Rows[1].Name, ShouldEqual, "congress-bills")
				So(page.Data.Rows[2].Name, ShouldEqual, "diseasome")
			})

			Convey("then every row has one cell per stat column", func() {
				for _, row := range page.Data.Rows {
					So(len(row.Cells)+1, ShouldEqual, len(page.Data.Columns))
				}
			})

			Convey("then counts are formatted with thousands separators", func() {
				So(page.Data.Rows[0].Cells, ShouldResemble, []string{"3,029", "271,233", "N/A", "N/A"})
				So(page.Data.Rows[1].Cells, ShouldResemble, []string{"1,718", "260,851", "85,082", "399"})
			})

			Convey("then a recorded zero renders as 0, not as the placeholder", func() {
				So(page.Data.Rows[2].Cells, ShouldResemble, []string{"N/A", "0", "N/A", "N/A"})
			})

			Convey("then file URLs are truncated at the collection path segment", func() {
				So(page.Data.Rows[0].URI, ShouldEqual, "https://example.org/tags-ask-ubuntu")
				So(page.Data.Rows[1].URI, ShouldEqual, "https://example.org/congress-bills")
			})

			Convey("then URLs without the collection path segment are used unchanged", func() {
				So(page.Data.Rows[2].URI, ShouldEqual, "https://example.org/diseasome/readme")
			})

			Convey("then the page furniture is set", func() {
				So(page.Metadata.Title, ShouldEqual, "Datasets")
				So(page.BetaBannerEnabled, ShouldBeTrue)
				So(page.Breadcrumb, ShouldHaveLength, 2)
				So(page.Breadcrumb[0].Title, ShouldEqual, "Home")
				So(page.Breadcrumb[1].URI, ShouldEqual, "/datasets")
			})
		})
	})

	Convey("given an empty index", t, func() {
		index := datasetindex.Index{Datasets: orderedmap.New[string, datasetindex.Dataset]()}

		Convey("when the page model is created", func() {
			page := CreateDatasetIndexPage(index)

			Convey("then the header columns are present and there are no rows", func() {
				So(page.Data.Columns, ShouldHaveLength, 5)
				So(page.Data.Rows, ShouldHaveLength, 0)
			})
		})
	})

	Convey("given a zero-value index that was never decoded", t, func() {
		page := CreateDatasetIndexPage(datasetindex.Index{})

		Convey("the mapper still produces a header-only table", func() {
			So(page.Data.Columns, ShouldHaveLength, 5)
			So(page.Data.Rows, ShouldHaveLength, 0)
		})
	})
}

func TestCollectionURL(t *testing.T) {

	Convey("the collection link is the file URL truncated at the first collection path segment", t, func() {
		So(collectionURL("https://example.org/dataset/files/readme"), ShouldEqual, "https://example.org/dataset")
		So(collectionURL("https://example.org/dataset/files/files/x"), ShouldEqual, "https://example.org/dataset")
		So(collectionURL("https://example.org/dataset"), ShouldEqual, "https://example.org/dataset")
		So(collectionURL(""), ShouldEqual, "")
	})
}
