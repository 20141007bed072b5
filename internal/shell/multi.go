package shell

// Multi broadcasts every command to a set of targets. A target whose write
// fails is dropped for the rest of the process and reported to OnDrop; the
// remaining targets keep receiving commands.
type Multi struct {
	targets []Shell
	OnDrop  func(Shell, error)
}

func NewMulti(targets ...Shell) *Multi {
	return &Multi{targets: targets}
}

func (m *Multi) Add(sh Shell) {
	m.targets = append(m.targets, sh)
}

// Len reports how many targets are still active.
func (m *Multi) Len() int {
	return len(m.targets)
}

func (m *Multi) Cd(path string) error {
	m.each(func(sh Shell) error { return sh.Cd(path) })
	return nil
}

func (m *Multi) Run(command string, args ...string) error {
	m.each(func(sh Shell) error { return sh.Run(command, args...) })
	return nil
}

// SetEnv rejects an invalid key up front so that bad input never counts
// as a target failure.
func (m *Multi) SetEnv(key, value string) error {
	if err := ValidateEnvKey(key); err != nil {
		return err
	}
	m.each(func(sh Shell) error { return sh.SetEnv(key, value) })
	return nil
}

func (m *Multi) each(fn func(Shell) error) {
	kept := m.targets[:0]
	for _, sh := range m.targets {
		if err := fn(sh); err != nil {
			if m.OnDrop != nil {
				m.OnDrop(sh, err)
			}
			continue
		}
		kept = append(kept, sh)
	}
	clear(m.targets[len(kept):])
	m.targets = kept
}
