package facilityservice

// Facility модель объекта бронирования из FacilityService
type Facility struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	BuildingID          int64  `json:"building_id"`
	BuildingName        string `json:"building_name"`
	Capacity            int    `json:"capacity"`
	ScheduleID          *int64 `json:"schedule_id,omitempty"`           // nil = объект без расписания, бронирование невозможно
	ResponsiblePersonID *int64 `json:"responsible_person_id,omitempty"` // nil = объект без ответственного лица
}

// HasSchedule возвращает true, если объекту назначено расписание
func (f *Facility) HasSchedule() bool {
	return f.ScheduleID != nil
}

// ErrorResponse модель ошибки от FacilityService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
