package parts

type Factory struct {
	reducers map[string]Reducer
}

func NewFactory(reducers []Reducer) *Factory {
	byName := make(map[string]Reducer, len(reducers))
	for _, r := range reducers {
		byName[r.Name()] = r
	}
	return &Factory{reducers: byName}
}

func (f *Factory) Get(name string) (Reducer, error) {
	r, ok := f.reducers[name]
	if !ok {
		return nil, ErrPartNotFound
	}
	return r, nil
}
