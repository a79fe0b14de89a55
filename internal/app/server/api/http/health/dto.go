package health

type Input struct{}

type Output struct {
	Body Response
}

// Response - сервис жив и хранилище ответило на ping.
type Response struct {
	Status  string `json:"status" example:"OK"`
	Storage string `json:"storage" example:"up" doc:"Состояние хранилища: up или unknown, если оно не подключено"`
	PingMS  int64  `json:"ping_ms" example:"1" doc:"Время ping хранилища, мс"`
}
