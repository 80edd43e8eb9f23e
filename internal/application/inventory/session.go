package inventory

import "sync"

// Sessions registro de motores de reposición y conciliadores, uno por usuario autenticado.
// El estado de cada operador sobrevive entre peticiones.
type Sessions struct {
	mu            sync.Mutex
	engines       map[string]*ReorderEngine
	reconcilers   map[string]*Reconciler
	newEngine     func() *ReorderEngine
	newReconciler func() *Reconciler
}

// NewSessions construye el registro con las fábricas de cada componente.
func NewSessions(newEngine func() *ReorderEngine, newReconciler func() *Reconciler) *Sessions {
	return &Sessions{
		engines:       make(map[string]*ReorderEngine),
		reconcilers:   make(map[string]*Reconciler),
		newEngine:     newEngine,
		newReconciler: newReconciler,
	}
}

// Engine devuelve el motor de reposición del usuario, creándolo si no existe.
func (s *Sessions) Engine(userID string) *ReorderEngine {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.engines[userID]
	if !ok {
		e = s.newEngine()
		s.engines[userID] = e
	}
	return e
}

// Reconciler devuelve el conciliador de movimientos del usuario, creándolo si no existe.
func (s *Sessions) Reconciler(userID string) *Reconciler {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reconcilers[userID]
	if !ok {
		r = s.newReconciler()
		s.reconcilers[userID] = r
	}
	return r
}
