// Package catalog holds the static lab/product reference data. The catalog
// is loaded once and read-only; product ids are unique across all labs.
package catalog

import "labfeedback-backend/internal/models"

// Labs returns the full catalog in display order. This is the seed data for
// the labs collection and the source of truth for product-id validation.
func Labs() []models.Lab {
	return []models.Lab{
		{
			LabID:   "a",
			LabName: "LAB 308-A",
			Products: []models.Product{
				{ID: "a1", Name: "Trueconnect.jio", Icon: "📶"},
				{ID: "a2", Name: "Drone", Icon: "🚁"},
				{ID: "a3", Name: "Samsung Ecosystem", Icon: "📱"},
				{ID: "a4", Name: "IP CAMERA", Icon: "📹"},
				{ID: "a5", Name: "100 Billion Tech", Icon: "💰"},
				{ID: "a6", Name: "VSCode", Icon: "💻"},
			},
		},
		{
			LabID:   "c",
			LabName: "LAB 308-C",
			Products: []models.Product{
				{ID: "c1", Name: "SimilaCure", Icon: "💊"},
				{ID: "c2", Name: "Allotrak", Icon: "📊"},
				{ID: "c3", Name: "Reliance Samarth", Icon: "🛍️"},
				{ID: "c4", Name: "Temperature Calibrator", Icon: "🌡️"},
				{ID: "c5", Name: "Video Door Phone", Icon: "🚪"},
				{ID: "c6", Name: "Motherboard Full Setup Raw - 1", Icon: "⚙️"},
				{ID: "c7", Name: "Dial Club", Icon: "☎️"},
				{ID: "c8", Name: "Website/App", Icon: "🌐"},
				{ID: "c9", Name: "Copilot", Icon: "🤖"},
			},
		},
		{
			LabID:   "d",
			LabName: "LAB 308-D",
			Products: []models.Product{
				{ID: "d1", Name: "DND Services", Icon: "🚫"},
				{ID: "d2", Name: "Her Circle", Icon: "♀️"},
				{ID: "d3", Name: "Optimis", Icon: "📈"},
				{ID: "d4", Name: "RDiscovery", Icon: "🔬"},
				{ID: "d5", Name: "PaperPal", Icon: "📝"},
				{ID: "d6", Name: "MDVR Camera Shivsahi", Icon: "🚌"},
				{ID: "d7", Name: "Motherboard Full Setup Raw - 2", Icon: "🛠️"},
				{ID: "d8", Name: "OSM", Icon: "🗺️"},
				{ID: "d9", Name: "Apple Ecosystem", Icon: "🍏"},
				{ID: "d10", Name: "EDQuest", Icon: "🎓"},
			},
		},
	}
}

// Entry resolves a product id to its product and owning lab.
type Entry struct {
	Product models.Product
	LabID   string
	LabName string
}

// Index maps product ids to catalog entries.
type Index map[string]Entry

// BuildIndex flattens labs into a product-id lookup.
func BuildIndex(labs []models.Lab) Index {
	ix := make(Index)
	for _, lab := range labs {
		for _, p := range lab.Products {
			ix[p.ID] = Entry{Product: p, LabID: lab.LabID, LabName: lab.LabName}
		}
	}
	return ix
}

// Has reports whether a product id exists in the catalog.
func (ix Index) Has(productID string) bool {
	_, ok := ix[productID]
	return ok
}
