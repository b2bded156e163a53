package entity

// Snapshot conjunto de productos y ventas de un tenant sobre el que corre la
// analítica. Es también el formato del caché y del archivo que evalúa la CLI.
type Snapshot struct {
	TenantID string    `json:"tenant_id,omitempty"`
	Products []Product `json:"products"`
	Sales    []Sale    `json:"sales"`
}
