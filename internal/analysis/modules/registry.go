package modules

import (
	"fmt"

	"github.com/vastu-microservice/internal/analysis"
	"github.com/vastu-microservice/internal/domain"
	"github.com/vastu-microservice/internal/pkg/errors"
)

// Module - зарегистрированный аналитический модуль: тонкая
// конфигурация оценочного движка со своей таблицей атрибутов.
type Module struct {
	ID          string
	Title       string
	Description string
	Engine      *analysis.Engine
}

// Registry - реестр аналитических модулей. Заполняется один раз при
// старте, далее только читается.
type Registry struct {
	modules map[string]Module
	order   []string
}

// NewRegistry создает реестр со встроенными модулями. Ошибка сборки
// любого модуля (неполная таблица атрибутов) фатальна для старта.
func NewRegistry() (*Registry, error) {
	r := &Registry{modules: make(map[string]Module)}

	builders := []struct {
		description string
		build       func() (*analysis.Engine, error)
	}{
		{"Placement of structural mass relative to the cardinal zones", newStructureModule},
		{"Obstructions and clutter across directional zones", newObstructionModule},
		{"Declared room usages matched to their zones", newRoomsModule},
		{"Main entrance placement assessment", newEntranceModule},
		{"Built footprint share of each elemental zone", newElementsModule},
	}

	for _, b := range builders {
		engine, err := b.build()
		if err != nil {
			return nil, fmt.Errorf("build analysis module: %w", err)
		}
		r.register(Module{
			ID:          engine.ModuleID(),
			Title:       engine.Title(),
			Description: b.description,
			Engine:      engine,
		})
	}
	return r, nil
}

func (r *Registry) register(m Module) {
	r.modules[m.ID] = m
	r.order = append(r.order, m.ID)
}

// Get возвращает модуль по идентификатору.
func (r *Registry) Get(id string) (Module, error) {
	m, ok := r.modules[id]
	if !ok {
		return Module{}, errors.ErrUnknownModule.WithDetails(map[string]interface{}{
			"module": id,
		})
	}
	return m, nil
}

// List возвращает модули в порядке регистрации.
func (r *Registry) List() []Module {
	out := make([]Module, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.modules[id])
	}
	return out
}

// IDs возвращает идентификаторы всех модулей.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

// Attributes возвращает таблицу атрибутов модуля; удобный доступ для
// отчетов без обращения к движку.
func (r *Registry) Attributes(id string) (domain.AttributeTable, error) {
	m, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	return m.Engine.Attributes(), nil
}
