package converter

import (
	"github.com/google/uuid"

	"github.com/kashfety/kashfety-api/internal/delivery/dto"
	"github.com/kashfety/kashfety-api/internal/domain/entity"
)

// ScheduleEntryToResponse converts a WeeklySchedule entity to ScheduleEntryResponse DTO
func ScheduleEntryToResponse(entry *entity.WeeklySchedule) *dto.ScheduleEntryResponse {
	if entry == nil {
		return nil
	}

	return &dto.ScheduleEntryResponse{
		ID:                  entry.ID,
		DayOfWeek:           entry.DayOfWeek,
		DayName:             entity.DayName(entry.DayOfWeek),
		IsAvailable:         entry.IsAvailable,
		StartTime:           entry.StartTime,
		EndTime:             entry.EndTime,
		SlotDurationMinutes: entry.SlotDurationMinutes,
		BreakStart:          entry.BreakStart,
		BreakEnd:            entry.BreakEnd,
		Notes:               entry.Notes,
		CreatedAt:           entry.CreatedAt,
		UpdatedAt:           entry.UpdatedAt,
	}
}

// ScheduleEntriesToResponse converts an offering's weekly entries to ScheduleResponse DTO
func ScheduleEntriesToResponse(offeringID uuid.UUID, entries []entity.WeeklySchedule) *dto.ScheduleResponse {
	responses := make([]dto.ScheduleEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = *ScheduleEntryToResponse(&entry)
	}

	return &dto.ScheduleResponse{
		OfferingID: offeringID,
		Entries:    responses,
		Total:      len(responses),
	}
}

// ScheduleEntryFromRequest converts a ScheduleEntryRequest DTO to a WeeklySchedule entity
func ScheduleEntryFromRequest(offeringID uuid.UUID, req *dto.ScheduleEntryRequest) entity.WeeklySchedule {
	return entity.WeeklySchedule{
		OfferingID:          offeringID,
		DayOfWeek:           req.DayOfWeek,
		IsAvailable:         req.IsAvailable,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		SlotDurationMinutes: req.SlotDurationMinutes,
		BreakStart:          req.BreakStart,
		BreakEnd:            req.BreakEnd,
		Notes:               req.Notes,
	}
}
