// Package jobs implements background job processing for the Motion API.
//
// Jobs run on a robfig/cron scheduler independently of HTTP request handling.
//
// # Backend Monitor
//
// BackendMonitor probes the AI/places backend on a schedule and publishes
// reachability to a gauge:
//
//	monitor, err := jobs.NewBackendMonitor(jobs.BackendMonitorConfig{
//	    Prober:   backendClient,
//	    Gauge:    metrics,
//	    Schedule: "@every 1m",
//	})
//	monitor.Start()
//	defer monitor.Stop()
//
// # Error Handling
//
// Jobs log errors but don't crash the application. A failed probe is
// recorded and retried on the next tick.
package jobs
