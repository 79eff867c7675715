package repository

// GuestCartLine is one persisted guest cart line. The wire shape matches
// the stored JSON array: [{"id": 3, "qty": 2}, ...].
type GuestCartLine struct {
	ProductID uint `json:"id"`
	Qty       int  `json:"qty"`
}

// ProductListFilter narrows catalog queries.
type ProductListFilter struct {
	Kind       string
	Category   string
	Search     string
	OnlyActive bool
}

// PageFilter is a plain offset page used by the purge command.
type PageFilter struct {
	Limit  int
	LastID uint
}
