package domain

import "sort"

// Plot - состояние грядки. Watered и Crop имеют смысл только при Tilled.
type Plot struct {
	Tilled  bool     `json:"tilled"`
	Watered bool     `json:"watered"`
	Crop    CropKind `json:"crop"`
	Growth  int      `json:"growth"`
	Ready   bool     `json:"ready"`
}

// HasCrop - что-то посажено
func (p *Plot) HasCrop() bool {
	return p.Crop != CropNone
}

// Stage возвращает визуальную стадию: 0 - пусто, 1..3 - стадия роста
func (p *Plot) Stage() int {
	if !p.Tilled || !p.HasCrop() {
		return 0
	}
	if p.Ready {
		return MaturityStage + 1
	}
	return p.Growth + 1
}

// PlotRegistry - разреженная карта грядок по координате клетки.
// Грядки создаются лениво и никогда не удаляются.
type PlotRegistry map[Position]*Plot

// Get возвращает грядку или nil
func (r PlotRegistry) Get(p Position) *Plot {
	return r[p]
}

// GetOrCreate возвращает существующую грядку или вставляет пустую
func (r PlotRegistry) GetOrCreate(p Position) *Plot {
	if plot, ok := r[p]; ok {
		return plot
	}
	plot := &Plot{}
	r[p] = plot
	return plot
}

// Keys возвращает координаты в стабильном порядке (по Y, затем X)
func (r PlotRegistry) Keys() []Position {
	keys := make([]Position, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Y != keys[j].Y {
			return keys[i].Y < keys[j].Y
		}
		return keys[i].X < keys[j].X
	})
	return keys
}

// Clone делает глубокую копию реестра
func (r PlotRegistry) Clone() PlotRegistry {
	out := make(PlotRegistry, len(r))
	for k, v := range r {
		plot := *v
		out[k] = &plot
	}
	return out
}
