// Package logging provides structured logging for barbershop runs.
//
// It wraps Go's log/slog with a JSON handler and adds persistent context
// attributes (run, barber, client) through child loggers.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger("/var/log/barbershop", "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	runLogger := logger.WithRun(runID)
//	runLogger.WithBarber(2).Info("haircut finished", "client_id", 17)
//
// Output:
//
//	{"time":"...","level":"INFO","msg":"haircut finished","run_id":"...","barber_id":2,"client_id":17}
//
// An empty directory sends logs to stderr.
//
// # Log Rotation
//
// [NewLoggerWithRotation] writes through a [RotatingWriter], which rotates
// barbershop.log into barbershop.log.1 .. barbershop.log.N once it reaches
// MaxSizeMB, optionally gzip-compressing the backups.
//
// # Testing
//
// Use [NopLogger] to discard output, or [New] with a bytes.Buffer to assert
// on the JSON lines.
package logging
