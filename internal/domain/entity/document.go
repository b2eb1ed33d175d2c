package entity

// Company identifies the selling business on the document footer.
type Company struct {
	Name      string `json:"name"`
	LegalName string `json:"legal_name"`
	TaxID     string `json:"tax_id"`
}

// DocumentModel is the immutable, renderer-ready snapshot of an order. It is
// built once per preview and holds no reference back into form state.
type DocumentModel struct {
	Company  Company  `json:"company"`
	Customer Customer `json:"customer"`
	Order    Order    `json:"order"`
}
