package dto

import "github.com/vastu-microservice/internal/domain"

// ModuleInfo - описание аналитического модуля для списка модулей.
type ModuleInfo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ReportResponse - отчет анализа с цветами для слоя отрисовки.
// Цвета - презентационное дополнение, сами оценки не меняются.
type ReportResponse struct {
	*domain.AnalysisReport
	OverallColor    string            `json:"overall_color"`
	DirectionColors map[string]string `json:"direction_colors"`
}

// FloorplanResponse - результат загрузки изображения плана.
type FloorplanResponse struct {
	ProjectID     string `json:"project_id"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	ThumbnailFile string `json:"thumbnail_file"`
}
