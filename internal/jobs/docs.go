// Package jobs provides scheduled background tasks for the food-delivery service.
//
// Jobs use github.com/robfig/cron/v3 with second-level expressions.
//
// # Available Jobs
//
// DeliverySchedulingJob runs ScheduleDelivery for the current hour with the
// configured maximum distance and order cap, and logs the claimed order ids.
// The service only creates it when SCHEDULE_CRON is set.
//
// # Usage
//
//	job := jobs.NewDeliverySchedulingJob(handler, jobs.DeliverySchedulingConfig{
//		Schedule:    "0 */5 * * * *",
//		MaxDistance: 5,
//		MaxOrders:   10,
//	}, logger)
//	jobManager := jobs.NewJobManager(job)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the next tick tries again. Runs that claim
// nothing are silent.
package jobs
