// Package logger builds configured log/slog loggers with environment-aware
// defaults and context attribute injection.
//
// Production loggers emit JSON at INFO level; development loggers emit text
// at DEBUG level. Context extractors inject request-scoped attributes (such
// as the request ID) into every record logged with a context.
//
//	log := logger.New(
//	    logger.WithEnvironment(env, "blaide-site"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
package logger
