// Package observability provides OpenTelemetry tracing and metrics for Web
// API calls.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("my-bot"))
//	defer tp.Shutdown(ctx)
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("my-bot"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("my-bot"))
//	client, err := httpclient.New(httpclient.Config{Metrics: metrics})
package observability
