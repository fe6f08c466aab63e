package paramutils

type MockFlagRepo struct {
	Strings map[string]string
	Bools   map[string]bool
	Ints    map[string]int
}

func (m *MockFlagRepo) GetStringOrDefault(flag, d string) string {
	s, ok := m.Strings[flag]
	if !ok || s == "" {
		return d
	}

	return s
}

func (m *MockFlagRepo) GetBoolOrDefault(flag string, d bool) bool {
	v, ok := m.Bools[flag]
	if !ok {
		return d
	}

	return v
}

func (m *MockFlagRepo) GetIntOrDefault(flag string, d int) int {
	v, ok := m.Ints[flag]
	if !ok || v == 0 {
		return d
	}

	return v
}
