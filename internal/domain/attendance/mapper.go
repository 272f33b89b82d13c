package attendance

import "time"

const timestampFormat = "2006-01-02 15:04:05"

// NewAttendanceResponse maps an attendance record to its API shape.
func NewAttendanceResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:           a.ID,
		UserID:       a.UserID,
		UserName:     a.UserName,
		Date:         a.Date.Format(time.DateOnly),
		BreakMinutes: a.BreakMinutes,
		Status:       string(a.Status),
		Notes:        a.Notes,
	}

	if a.ClockIn != nil {
		clockIn := a.ClockIn.Format(timestampFormat)
		resp.ClockIn = &clockIn
	}

	if a.ClockOut != nil {
		clockOut := a.ClockOut.Format(timestampFormat)
		resp.ClockOut = &clockOut
	}

	if a.HoursWorked != nil {
		hours := a.HoursWorked.String()
		resp.HoursWorked = &hours
	}

	return resp
}

func NewAttendanceResponses(records []Attendance) []AttendanceResponse {
	responses := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, NewAttendanceResponse(a))
	}
	return responses
}
