package main

import (
	"context"

	bookinghandler "eventdesk/internal/bookings/handler"
	bookingrepo "eventdesk/internal/bookings/repository"
	bookingservice "eventdesk/internal/bookings/service"
	bookingvalidator "eventdesk/internal/bookings/validator"
	customerhandler "eventdesk/internal/customers/handler"
	customerrepo "eventdesk/internal/customers/repository"
	customerservice "eventdesk/internal/customers/service"
	customervalidator "eventdesk/internal/customers/validator"
	dashboardhandler "eventdesk/internal/dashboard/handler"
	dashboardservice "eventdesk/internal/dashboard/service"
	eventtypehandler "eventdesk/internal/eventtypes/handler"
	eventtyperepo "eventdesk/internal/eventtypes/repository"
	eventtypeservice "eventdesk/internal/eventtypes/service"
	settinghandler "eventdesk/internal/settings/handler"
	settingrepo "eventdesk/internal/settings/repository"
	settingservice "eventdesk/internal/settings/service"
	"eventdesk/pkg/app"
	"eventdesk/pkg/config"
	"eventdesk/pkg/contracts"
	"eventdesk/pkg/kafka"
)

const ServiceName = "eventdesk"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting EventDesk service")

	producer := initProducer(cfg)
	handlers := initServices(cfg, producer)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handlers...).Run()

	if producer != nil {
		if err := producer.Close(); err != nil {
			cfg.Log.Error("Failed to close Kafka producer", "error", err)
		}
	}
	cfg.Client.GracefulShutdown(context.Background(), cfg.Log)
}

func initProducer(cfg *config.Config) *kafka.Producer {
	if !cfg.KafkaEnabled() {
		cfg.Log.Info("Kafka publishing disabled, no brokers configured")
		return nil
	}

	producer, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaBookingEventsTopic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	cfg.Log.Info("Kafka producer initialized",
		"brokers", cfg.KafkaBrokers,
		"topic", cfg.KafkaBookingEventsTopic,
	)
	return producer
}

func initServices(cfg *config.Config, producer *kafka.Producer) []contracts.Handler {
	settingRepo := settingrepo.NewMongoSettingRepository(cfg)
	settingService := settingservice.NewSettingService(settingRepo, cfg)

	// A nil *Producer must not reach the service as a non-nil interface.
	var publisher bookingservice.EventPublisher
	if producer != nil {
		publisher = producer
	}

	bookingService := bookingservice.NewBookingService(
		bookingrepo.NewMongoBookingRepository(cfg),
		bookingrepo.NewBookingLockRepository(cfg),
		bookingvalidator.NewBookingValidator(cfg.Log),
		settingService,
		publisher,
		cfg,
	)

	customerService := customerservice.NewCustomerService(
		customerrepo.NewMongoCustomerRepository(cfg),
		customervalidator.NewCustomerValidator(),
		cfg,
	)

	eventTypeService := eventtypeservice.NewEventTypeService(
		eventtyperepo.NewMongoEventTypeRepository(cfg),
		cfg,
	)

	dashboardService := dashboardservice.NewDashboardService(
		bookingrepo.NewMongoBookingRepository(cfg),
		cfg,
	)

	cfg.Log.Info("Services initialized", "database", cfg.MongoDatabaseName)

	return []contracts.Handler{
		bookinghandler.NewBookingHandler(bookingService, cfg.Log),
		customerhandler.NewCustomerHandler(customerService, cfg.Log),
		eventtypehandler.NewEventTypeHandler(eventTypeService, cfg.Log),
		settinghandler.NewSettingHandler(settingService, cfg.Log),
		dashboardhandler.NewDashboardHandler(dashboardService, cfg.Log),
	}
}
