package redis

// Config describes the chat request/reply streams the worker serves.
type Config struct {
	Addr         string
	Password     string
	InStream     string
	OutStream    string
	GroupID      string
	ConsumerName string
}
