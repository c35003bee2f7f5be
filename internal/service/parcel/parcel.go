package parcel

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"logistics/internal/entities"
	"logistics/pkg/logger"
)

const (
	maxTrackingNumberAttempts = 16

	createdComment        = "Parcel created"
	assignedCommentPrefix = "Assigned to courier "
)

type Parcel struct {
	repository        Repository
	historyRepository HistoryRepository
	clientService     ClientService
	recipientService  RecipientService
	zoneService       ZoneService
	productService    ProductService
	courierService    CourierService
	trackingGenerator TrackingNumberGenerator
	deadlineFactory   DeliveryDeadlineFactory
	publisher         EventPublisher
	txManager         TxManager
	log               serviceLogger
}

func New(
	repository Repository,
	historyRepository HistoryRepository,
	clientService ClientService,
	recipientService RecipientService,
	zoneService ZoneService,
	productService ProductService,
	courierService CourierService,
	trackingGenerator TrackingNumberGenerator,
	deadlineFactory DeliveryDeadlineFactory,
	publisher EventPublisher,
	txManager TxManager,
	log serviceLogger,
) *Parcel {
	return &Parcel{
		repository:        repository,
		historyRepository: historyRepository,
		clientService:     clientService,
		recipientService:  recipientService,
		zoneService:       zoneService,
		productService:    productService,
		courierService:    courierService,
		trackingGenerator: trackingGenerator,
		deadlineFactory:   deadlineFactory,
		publisher:         publisher,
		txManager:         txManager,
		log:               log.With(logger.NewField("service", "parcel")),
	}
}

// CreateParcel сохраняет посылку, ее позиции и первую запись истории в одной транзакции.
// Вес считается один раз здесь и больше не пересчитывается.
func (s *Parcel) CreateParcel(ctx context.Context, parcelCreate entities.ParcelCreate) (*entities.ParcelDetails, error) {
	if parcelCreate.Priority == "" {
		parcelCreate.Priority = entities.DefaultPriority
	}

	if err := validateCreate(parcelCreate); err != nil {
		return nil, err
	}

	var details entities.ParcelDetails

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.clientService.GetClient(ctx, parcelCreate.ClientID); err != nil {
			return fmt.Errorf("get client: %w", err)
		}
		if _, err := s.recipientService.GetRecipient(ctx, parcelCreate.RecipientID); err != nil {
			return fmt.Errorf("get recipient: %w", err)
		}
		zone, err := s.zoneService.GetZone(ctx, parcelCreate.ZoneID)
		if err != nil {
			return fmt.Errorf("get zone: %w", err)
		}

		totalWeight := decimal.Zero
		items := make([]entities.ParcelItem, 0, len(parcelCreate.Items))
		for _, itemCreate := range parcelCreate.Items {
			product, err := s.productService.GetProduct(ctx, itemCreate.ProductID)
			if err != nil {
				return fmt.Errorf("get product %d: %w", itemCreate.ProductID, err)
			}

			quantity := decimal.NewFromInt(int64(itemCreate.Quantity))
			totalWeight = totalWeight.Add(product.Weight.Mul(quantity))
			items = append(items, entities.ParcelItem{
				ProductID: product.ID,
				Quantity:  itemCreate.Quantity,
				UnitPrice: product.Price,
			})
		}

		trackingNumber, err := s.nextTrackingNumber(ctx)
		if err != nil {
			return err
		}

		plannedDeliveryAt := parcelCreate.PlannedDeliveryAt
		if plannedDeliveryAt == nil {
			deadline := s.deadlineFactory.CalculateDeadline(parcelCreate.Priority, time.Now().UTC())
			plannedDeliveryAt = &deadline
		}

		status := entities.ParcelCreated
		parcel, err := s.repository.Create(ctx, entities.ParcelModify{
			TrackingNumber:    &trackingNumber,
			Description:       parcelCreate.Description,
			TotalWeight:       &totalWeight,
			Status:            &status,
			Priority:          &parcelCreate.Priority,
			DestinationCity:   &zone.City,
			ClientID:          &parcelCreate.ClientID,
			RecipientID:       &parcelCreate.RecipientID,
			ZoneID:            &parcelCreate.ZoneID,
			PlannedDeliveryAt: plannedDeliveryAt,
		})
		if err != nil {
			return fmt.Errorf("create parcel: %w", err)
		}

		createdItems, err := s.repository.CreateItems(ctx, parcel.ID, items)
		if err != nil {
			return fmt.Errorf("create parcel items: %w", err)
		}

		entry, err := s.historyRepository.Append(ctx, parcel.ID, status, createdComment)
		if err != nil {
			return fmt.Errorf("append history: %w", err)
		}

		details = entities.ParcelDetails{
			Parcel:  *parcel,
			Items:   createdItems,
			History: []entities.StatusHistoryEntry{*entry},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ParcelsCreatedTotal.WithLabelValues(details.Parcel.Priority.String()).Inc()
	s.publish(ctx, &details.Parcel, &details.History[0])

	return &details, nil
}

// ChangeStatus не проверяет порядок статусов: допускается любой переход.
func (s *Parcel) ChangeStatus(ctx context.Context, parcelID int64, status entities.ParcelStatus, comment string) (*entities.Parcel, error) {
	if !isValidID(parcelID) {
		return nil, ErrInvalidParcelID
	}
	// неизвестный статус отдается как not found, ErrInvalidStatus остается в цепочке
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %w", ErrParcelNotFound, ErrInvalidStatus)
	}

	parcelModify := entities.ParcelModify{
		ID:     &parcelID,
		Status: &status,
	}
	if status == entities.ParcelDelivered {
		deliveredAt := time.Now().UTC()
		parcelModify.DeliveredAt = &deliveredAt
	}

	parcel, entry, err := s.updateWithHistory(ctx, parcelModify, comment)
	if err != nil {
		return nil, fmt.Errorf("change parcel status: %w", err)
	}

	ParcelStatusTransitionsTotal.WithLabelValues(status.String()).Inc()
	s.publish(ctx, parcel, entry)

	return parcel, nil
}

// AssignCourier всегда переводит посылку в in_transit, в том числе уже доставленную.
func (s *Parcel) AssignCourier(ctx context.Context, parcelID, courierID int64) (*entities.Parcel, error) {
	if !isValidID(parcelID) {
		return nil, ErrInvalidParcelID
	}
	if !isValidID(courierID) {
		return nil, ErrInvalidCourierID
	}

	var (
		parcel *entities.Parcel
		entry  *entities.StatusHistoryEntry
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		courier, err := s.courierService.GetCourier(ctx, courierID)
		if err != nil {
			return fmt.Errorf("get courier: %w", err)
		}

		status := entities.ParcelInTransit
		parcel, entry, err = s.updateWithHistory(ctx, entities.ParcelModify{
			ID:        &parcelID,
			CourierID: &courier.ID,
			Status:    &status,
		}, assignedCommentPrefix+courier.LastName)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("assign courier: %w", err)
	}

	ParcelStatusTransitionsTotal.WithLabelValues(parcel.Status.String()).Inc()
	s.publish(ctx, parcel, entry)

	return parcel, nil
}

func (s *Parcel) GetParcel(ctx context.Context, id int64) (*entities.Parcel, error) {
	if !isValidID(id) {
		return nil, ErrInvalidParcelID
	}

	parcel, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}

	return parcel, nil
}

func (s *Parcel) GetParcelDetails(ctx context.Context, id int64) (*entities.ParcelDetails, error) {
	parcel, err := s.GetParcel(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.details(ctx, parcel)
}

func (s *Parcel) GetParcelByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.ParcelDetails, error) {
	if !isValidTrackingNumber(trackingNumber) {
		return nil, ErrInvalidTrackingNumber
	}

	parcel, err := s.repository.GetByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("get parcel by tracking number: %w", err)
	}

	return s.details(ctx, parcel)
}

// GetParcels сначала проверяет, что клиент, курьер и зона из фильтра существуют.
func (s *Parcel) GetParcels(ctx context.Context, filter entities.ParcelFilter) ([]entities.Parcel, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	if filter.ClientID != nil {
		if _, err := s.clientService.GetClient(ctx, *filter.ClientID); err != nil {
			return nil, fmt.Errorf("get parcels: %w", err)
		}
	}
	if filter.CourierID != nil {
		if _, err := s.courierService.GetCourier(ctx, *filter.CourierID); err != nil {
			return nil, fmt.Errorf("get parcels: %w", err)
		}
	}
	if filter.ZoneID != nil {
		if _, err := s.zoneService.GetZone(ctx, *filter.ZoneID); err != nil {
			return nil, fmt.Errorf("get parcels: %w", err)
		}
	}

	parcels, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get parcels: %w", err)
	}

	return parcels, nil
}

func (s *Parcel) GetOverdueParcels(ctx context.Context, now time.Time) ([]entities.Parcel, error) {
	parcels, err := s.repository.GetOverdue(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("get overdue parcels: %w", err)
	}

	return parcels, nil
}

func (s *Parcel) CountOverdueParcels(ctx context.Context, now time.Time) (int64, error) {
	count, err := s.repository.CountOverdue(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("count overdue parcels: %w", err)
	}

	return count, nil
}

func (s *Parcel) GetHistory(ctx context.Context, parcelID int64) ([]entities.StatusHistoryEntry, error) {
	if !isValidID(parcelID) {
		return nil, ErrInvalidParcelID
	}

	if _, err := s.repository.GetByID(ctx, parcelID); err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}

	history, err := s.historyRepository.GetByParcelID(ctx, parcelID)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}

	return history, nil
}

func (s *Parcel) updateWithHistory(ctx context.Context, parcelModify entities.ParcelModify, comment string) (*entities.Parcel, *entities.StatusHistoryEntry, error) {
	var (
		parcel *entities.Parcel
		entry  *entities.StatusHistoryEntry
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		parcel, err = s.repository.Update(ctx, parcelModify)
		if err != nil {
			return fmt.Errorf("update parcel: %w", err)
		}

		entry, err = s.historyRepository.Append(ctx, parcel.ID, parcel.Status, comment)
		if err != nil {
			return fmt.Errorf("append history: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return parcel, entry, nil
}

func (s *Parcel) details(ctx context.Context, parcel *entities.Parcel) (*entities.ParcelDetails, error) {
	items, err := s.repository.GetItems(ctx, parcel.ID)
	if err != nil {
		return nil, fmt.Errorf("get parcel items: %w", err)
	}

	history, err := s.historyRepository.GetByParcelID(ctx, parcel.ID)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}

	return &entities.ParcelDetails{
		Parcel:  *parcel,
		Items:   items,
		History: history,
	}, nil
}

func (s *Parcel) nextTrackingNumber(ctx context.Context) (string, error) {
	for range maxTrackingNumberAttempts {
		trackingNumber := s.trackingGenerator.Generate()

		exists, err := s.repository.ExistsByTrackingNumber(ctx, trackingNumber)
		if err != nil {
			return "", fmt.Errorf("check tracking number: %w", err)
		}
		if !exists {
			return trackingNumber, nil
		}
	}

	return "", ErrTrackingNumberExhausted
}

// publish вызывается после коммита. Ошибка публикации не откатывает изменение.
func (s *Parcel) publish(ctx context.Context, parcel *entities.Parcel, entry *entities.StatusHistoryEntry) {
	event := entities.ParcelStatusChanged{
		ParcelID:       parcel.ID,
		TrackingNumber: parcel.TrackingNumber,
		Status:         entry.Status,
		Comment:        entry.Comment,
		CourierID:      parcel.CourierID,
		ChangedAt:      entry.ChangedAt,
	}

	if err := s.publisher.PublishStatusChanged(ctx, event); err != nil {
		s.log.With(
			logger.NewField("error", err),
			logger.NewField("tracking_number", parcel.TrackingNumber),
			logger.NewField("status", entry.Status.String()),
		).Warn("publish parcel status event")
	}
}
