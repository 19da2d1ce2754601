package localstore

import (
	"fmt"

	"dukaan/internal/domain/entity"
)

// seedCatalog is the fixed sample catalog materialized on the very first
// products read. Ids are assigned sequentially (prod_0, prod_1, ...) and
// every item starts enabled.
var seedCatalog = []entity.Product{
	{Name: "Tea Powder Sachet", Price: 5, Category: "Grocery", Stock: 100, Image: "https://picsum.photos/seed/tea/400/400"},
	{Name: "Coffee Sachet", Price: 5, Category: "Grocery", Stock: 100, Image: "https://picsum.photos/seed/coffee/400/400"},
	{Name: "Biscuit Pack (Small)", Price: 10, Category: "Snacks", Stock: 50, Image: "https://picsum.photos/seed/biscuit/400/400"},
	{Name: "Chocolate (Mini)", Price: 10, Category: "Snacks", Stock: 50, Image: "https://picsum.photos/seed/choc/400/400"},
	{Name: "Pen", Price: 5, Category: "Stationery", Stock: 200, Image: "https://picsum.photos/seed/pen/400/400"},
	{Name: "Pencil", Price: 2, Category: "Stationery", Stock: 200, Image: "https://picsum.photos/seed/pencil/400/400"},
	{Name: "Eraser", Price: 1, Category: "Stationery", Stock: 200, Image: "https://picsum.photos/seed/eraser/400/400"},
	{Name: "Notebook (Mini)", Price: 10, Category: "Stationery", Stock: 50, Image: "https://picsum.photos/seed/notebook/400/400"},
	{Name: "Match Box", Price: 2, Category: "Daily Needs", Stock: 100, Image: "https://picsum.photos/seed/match/400/400"},
	{Name: "Plastic Cover", Price: 1, Category: "Daily Needs", Stock: 300, Image: "https://picsum.photos/seed/cover/400/400"},
}

// SeedProducts returns a fresh copy of the sample catalog with ids assigned.
func SeedProducts() []entity.Product {
	products := make([]entity.Product, len(seedCatalog))
	for i, p := range seedCatalog {
		p.ID = fmt.Sprintf("prod_%d", i)
		p.Enabled = true
		products[i] = p
	}

	return products
}

// DefaultSettings returns the fixed default shop profile materialized on the
// very first settings read.
func DefaultSettings() entity.StoreSettings {
	return entity.StoreSettings{
		Name:        "Parthi Store",
		Logo:        "https://picsum.photos/seed/store/200/200",
		Description: "Your local daily needs store",
		Location:    "Tambaram, Chennai, Tamil Nadu, India",
		Contact:     "9499900625",
		UpiID:       "parthi101089-1@okaxis",
	}
}
