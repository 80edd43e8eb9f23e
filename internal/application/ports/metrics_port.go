package ports

// Metrics recibe eventos de negocio para observabilidad.
type Metrics interface {
	MovementApplied(direction string, qty int)
	MovementFailed(direction string)
	PurchaseOrderConfirmed(lines int)
	PurchaseOrderFailed()
}

// NopMetrics descarta todos los eventos.
type NopMetrics struct{}

func (NopMetrics) MovementApplied(string, int) {}
func (NopMetrics) MovementFailed(string)       {}
func (NopMetrics) PurchaseOrderConfirmed(int)  {}
func (NopMetrics) PurchaseOrderFailed()        {}
