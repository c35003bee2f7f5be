package parcel

import "logistics/internal/entities"

func ToDomain(p *ParcelDB) *entities.Parcel {
	if p == nil {
		return nil
	}
	return &entities.Parcel{
		ID:                p.ID,
		TrackingNumber:    p.TrackingNumber,
		Description:       p.Description,
		TotalWeight:       p.TotalWeight,
		Status:            entities.ParcelStatus(p.Status),
		Priority:          entities.ParcelPriority(p.Priority),
		DestinationCity:   p.DestinationCity,
		ClientID:          p.ClientID,
		RecipientID:       p.RecipientID,
		ZoneID:            p.ZoneID,
		CourierID:         p.CourierID,
		PlannedDeliveryAt: p.PlannedDeliveryAt,
		DeliveredAt:       p.DeliveredAt,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func FromDomainModify(p *entities.ParcelModify) *ParcelModifyDB {
	if p == nil {
		return nil
	}

	parcelDB := &ParcelModifyDB{
		ID:                p.ID,
		TrackingNumber:    p.TrackingNumber,
		Description:       p.Description,
		TotalWeight:       p.TotalWeight,
		DestinationCity:   p.DestinationCity,
		ClientID:          p.ClientID,
		RecipientID:       p.RecipientID,
		ZoneID:            p.ZoneID,
		CourierID:         p.CourierID,
		PlannedDeliveryAt: p.PlannedDeliveryAt,
		DeliveredAt:       p.DeliveredAt,
	}
	if p.Status != nil {
		status := p.Status.String()
		parcelDB.Status = &status
	}
	if p.Priority != nil {
		priority := p.Priority.String()
		parcelDB.Priority = &priority
	}

	return parcelDB
}

func ToDomainList(parcelsDB []ParcelDB) []entities.Parcel {
	if len(parcelsDB) == 0 {
		return []entities.Parcel{}
	}

	result := make([]entities.Parcel, len(parcelsDB))
	for i := range parcelsDB {
		result[i] = *ToDomain(&parcelsDB[i])
	}
	return result
}

func ItemToDomain(i *ParcelItemDB) entities.ParcelItem {
	return entities.ParcelItem{
		ID:        i.ID,
		ParcelID:  i.ParcelID,
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
		UnitPrice: i.UnitPrice,
	}
}

func ItemsToDomainList(itemsDB []ParcelItemDB) []entities.ParcelItem {
	result := make([]entities.ParcelItem, len(itemsDB))
	for i := range itemsDB {
		result[i] = ItemToDomain(&itemsDB[i])
	}
	return result
}
