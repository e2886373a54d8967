package dto

// UploadResponse resultado de la ingesta de un lote. Message mantiene el texto
// que esperan los clientes existentes; Added y Skipped hacen el resultado
// observable sin leer logs.
type UploadResponse struct {
	Message string `json:"message"`
	Added   int    `json:"added"`
	Skipped int    `json:"skipped"`
}
