package dto

// Point - вершина контура в координатах изображения плана.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SituationalFlag - ситуационные флаги одного направления.
type SituationalFlag struct {
	HeavyStructure bool   `json:"heavy_structure"`
	Blocked        bool   `json:"blocked"`
	Usage          string `json:"usage,omitempty"`
}

// CreateProjectRequest - запрос на создание проекта
type CreateProjectRequest struct {
	Name           string  `json:"name" validate:"required,min=1,max=200"`
	Boundary       []Point `json:"boundary" validate:"required,min=3,max=500"`
	RotationOffset float64 `json:"rotation_offset" validate:"omitempty,min=-360,max=360"`
	Granularity    int     `json:"granularity" validate:"omitempty,oneof=8 16 32"`
}

// UpdateProjectRequest - запрос на обновление проекта
type UpdateProjectRequest struct {
	Name           string  `json:"name" validate:"required,min=1,max=200"`
	Boundary       []Point `json:"boundary" validate:"required,min=3,max=500"`
	RotationOffset float64 `json:"rotation_offset" validate:"omitempty,min=-360,max=360"`
	Granularity    int     `json:"granularity" validate:"omitempty,oneof=8 16 32"`
}

// RunAnalysisRequest - запрос на запуск модуля для проекта
type RunAnalysisRequest struct {
	Flags map[string]SituationalFlag `json:"flags,omitempty" validate:"omitempty,dive,keys,direction,endkeys"`
	Force bool                       `json:"force,omitempty"`
}

// AdHocAnalysisRequest - разовый анализ контура без сохранения проекта
type AdHocAnalysisRequest struct {
	Module         string                     `json:"module" validate:"required"`
	Boundary       []Point                    `json:"boundary" validate:"required,min=3,max=500"`
	RotationOffset float64                    `json:"rotation_offset" validate:"omitempty,min=-360,max=360"`
	Samples        int                        `json:"samples" validate:"omitempty,min=20,max=20000"`
	Flags          map[string]SituationalFlag `json:"flags,omitempty" validate:"omitempty,dive,keys,direction,endkeys"`
}

// SectorsRequest - запрос геометрии секторов
type SectorsRequest struct {
	Count          int     `json:"count" validate:"omitempty,oneof=8 16 32"`
	RotationOffset float64 `json:"rotation_offset" validate:"omitempty,min=-360,max=360"`
}

// ListProjectsRequest - параметры постраничного списка проектов
type ListProjectsRequest struct {
	Limit  int `json:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `json:"offset" validate:"omitempty,min=0"`
}
