// Package swagger Vastu Analysis Microservice API.
//
// Микросервис направленного анализа планировок. Принимает полигональный
// контур помещения или участка, строит вокруг его центроида круговую
// модель секторов, выровненную по сторонам света, и оценивает каждое
// направление по покрытию, структуре и использованию.
//
// Основные возможности:
// - Управление проектами с полигональными границами
// - Разбиение на 8/16/32 секторов с произвольным поворотом
// - Оценка покрытия секторов методом Монте-Карло
// - Модули анализа: структура, препятствия, назначение помещений, входы, элементы
// - Отчеты с оценками, уровнями серьезности и рекомендациями
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//	- multipart/form-data
//
//	Produces:
//	- application/json
//	- image/png
//
// swagger:meta
package swagger
