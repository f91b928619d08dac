package configurator

import "bartile/internal/domain/entity"

// Machine owns one configuration and applies single-field changes to it.
// It is not safe for concurrent use; the owning session store serializes access.
type Machine struct {
	cfg entity.Configuration
}

// NewMachine returns a machine holding the default configuration.
func NewMachine() *Machine {
	return &Machine{cfg: entity.DefaultConfiguration()}
}

// Update replaces exactly the field named by the change. Trim changes merge key-wise.
func (m *Machine) Update(change Change) {
	if change == nil {
		return
	}
	change.apply(&m.cfg)
}

// Reset discards every selection and restores the defaults.
func (m *Machine) Reset() {
	m.cfg = entity.DefaultConfiguration()
}

// Configuration returns a deep copy of the current configuration.
func (m *Machine) Configuration() entity.Configuration {
	return m.cfg.Clone()
}

// Restore replaces the configuration wholesale, e.g. when a shared link is opened.
func (m *Machine) Restore(cfg entity.Configuration) {
	m.cfg = cfg.Clone()
}

func (m *Machine) current() *entity.Configuration {
	return &m.cfg
}
