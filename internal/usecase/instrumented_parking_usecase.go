package usecase

import (
	"context"
	"time"

	"parkhub/internal/domain/entities"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentedParkingUseCase decorates IParkingUseCase with traces and
// metrics. Wired in instead of the plain orchestrator when telemetry is
// enabled.

type InstrumentedParkingUseCase struct {
	inner  IParkingUseCase
	tracer trace.Tracer

	entryOperations   metric.Int64Counter
	exitOperations    metric.Int64Counter
	occupancyGauge    metric.Int64UpDownCounter
	operationDuration metric.Float64Histogram
}

var _ IParkingUseCase = (*InstrumentedParkingUseCase)(nil)

func NewInstrumentedParkingUseCase(inner IParkingUseCase, tracer trace.Tracer, meter metric.Meter) (*InstrumentedParkingUseCase, error) {
	entryOperations, err := meter.Int64Counter("parking_entry_operations_total",
		metric.WithDescription("Total number of vehicle entry operations"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	exitOperations, err := meter.Int64Counter("parking_exit_operations_total",
		metric.WithDescription("Total number of vehicle exit operations"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	occupancyGauge, err := meter.Int64UpDownCounter("parking_facility_occupancy",
		metric.WithDescription("Current number of occupied parking spots"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	operationDuration, err := meter.Float64Histogram("parking_operation_duration_seconds",
		metric.WithDescription("Duration of parking workflow operations"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	return &InstrumentedParkingUseCase{
		inner:             inner,
		tracer:            tracer,
		entryOperations:   entryOperations,
		exitOperations:    exitOperations,
		occupancyGauge:    occupancyGauge,
		operationDuration: operationDuration,
	}, nil
}

func (u *InstrumentedParkingUseCase) ProcessEntry(ctx context.Context, vehicleRegNumber string, category entities.VehicleCategory) (EntryResult, error) {
	ctx, span := u.tracer.Start(ctx, "parking.process_entry",
		trace.WithAttributes(
			attribute.String("vehicle.registration_number", vehicleRegNumber),
			attribute.String("vehicle.category", string(category)),
		))
	defer span.End()

	start := time.Now()
	result, err := u.inner.ProcessEntry(ctx, vehicleRegNumber, category)
	duration := time.Since(start).Seconds()

	labels := []attribute.KeyValue{
		attribute.String("operation", "entry"),
		attribute.String("category", string(category)),
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		labels = append(labels, attribute.String("status", "failed"))
	} else {
		labels = append(labels, attribute.String("status", "success"))
		span.SetAttributes(
			attribute.Int("allocated_spot_id", result.SpotID),
			attribute.String("ticket_id", result.TicketID),
		)
		span.AddEvent("spot_allocated", trace.WithAttributes(
			attribute.Int("spot_id", result.SpotID),
		))
		u.occupancyGauge.Add(ctx, 1)
	}

	u.entryOperations.Add(ctx, 1, metric.WithAttributes(labels...))
	u.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return result, err
}

func (u *InstrumentedParkingUseCase) ProcessExit(ctx context.Context, vehicleRegNumber string) (Receipt, error) {
	ctx, span := u.tracer.Start(ctx, "parking.process_exit",
		trace.WithAttributes(
			attribute.String("vehicle.registration_number", vehicleRegNumber),
		))
	defer span.End()

	start := time.Now()
	receipt, err := u.inner.ProcessExit(ctx, vehicleRegNumber)
	duration := time.Since(start).Seconds()

	labels := []attribute.KeyValue{
		attribute.String("operation", "exit"),
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		labels = append(labels, attribute.String("status", "failed"))
	} else {
		labels = append(labels,
			attribute.String("status", "success"),
			attribute.String("payment_status", receipt.PaymentStatus),
		)
		span.SetAttributes(
			attribute.String("ticket_id", receipt.TicketID),
			attribute.Float64("price", receipt.Price),
			attribute.Bool("discount_applied", receipt.DiscountApplied),
		)
		span.AddEvent("spot_released", trace.WithAttributes(
			attribute.Int("spot_id", receipt.SpotID),
		))
		u.occupancyGauge.Add(ctx, -1)
	}

	u.exitOperations.Add(ctx, 1, metric.WithAttributes(labels...))
	u.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return receipt, err
}
