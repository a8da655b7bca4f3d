package handler

// handleProcessingStarted handles PACKET_PROCESSING_STARTED: the server
// is about to send a burst of related packets. No payload to decode.
func handleProcessingStarted(packetType uint16, payload []byte, deps *Deps) (Result, error) {
	deps.Logger.Debug("processing started")
	return Result{}, nil
}

// handleProcessingFinished handles PACKET_PROCESSING_FINISHED.
func handleProcessingFinished(packetType uint16, payload []byte, deps *Deps) (Result, error) {
	deps.Logger.Debug("processing finished")
	return Result{}, nil
}
