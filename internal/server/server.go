package server

// Server groups the HTTP handlers of every API area so they can be mounted
// on one router.
type Server struct {
	MeterServer
}

func NewServer(
	meterServer MeterServer,
) Server {
	return Server{
		MeterServer: meterServer,
	}
}
