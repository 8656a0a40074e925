package entity

// AuditAction tipo de acción registrada en el servicio de historial.
type AuditAction string

const (
	ActionCreateProduct AuditAction = "CREATE_PRODUCT"
	ActionCreateStock   AuditAction = "CREATE_STOCK"
	ActionIncreaseStock AuditAction = "INCREASE_STOCK"
	ActionDecreaseStock AuditAction = "DECREASE_STOCK"
)

// AuditEvent describe una mutación para el servicio de historial.
// ShopID es nil en la creación de productos.
type AuditEvent struct {
	Action    AuditAction
	ProductID int64
	ShopID    *int64
	Details   map[string]any
}
