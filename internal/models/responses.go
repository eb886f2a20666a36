package models

// PipelineResponse - ответ на ручной запуск загрузки
type PipelineResponse struct {
	Message string `json:"mensagem"`
	Report
}

// StatusResponse - ответ проверки доступности
type StatusResponse struct {
	Status string `json:"status"`
}
