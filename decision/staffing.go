package decision

import (
	"fmt"
	"strconv"
)

// The shift template is fixed: three 4-hour shifts regardless of the
// declared store hours. Store hours are carried through to the response
// untouched; shifts outside them are not filtered out.
var shiftStarts = []string{"08:00", "12:00", "16:00"}

const (
	shiftLengthHours     = 4
	defaultExpectedSales = 500
)

// ForecastEntry is the expected sales volume for one time slot.
type ForecastEntry struct {
	TimeSlot      string
	ExpectedSales float64
}

// EmployeeAvailability lists the shift start labels an employee can work.
type EmployeeAvailability struct {
	EmployeeID      int
	AvailableShifts []string
}

// ShiftRecommendation is the staffing plan for a single shift.
type ShiftRecommendation struct {
	ShiftStart        string  `json:"shift_start"`
	ShiftEnd          string  `json:"shift_end"`
	ExpectedSales     float64 `json:"expected_sales"`
	RequiredStaff     int     `json:"required_staff"`
	AssignedEmployees []int   `json:"assigned_employees"`
	StaffShortage     int     `json:"staff_shortage"`
}

// ScheduleSummary aggregates staffing needs across all shifts.
type ScheduleSummary struct {
	TotalRequiredStaff int `json:"total_required_staff"`
	TotalAssignedStaff int `json:"total_assigned_staff"`
	TotalStaffShortage int `json:"total_staff_shortage"`
}

// requiredStaffFor maps expected sales volume to headcount.
func requiredStaffFor(expectedSales float64) int {
	switch {
	case expectedSales > 1000:
		return 4
	case expectedSales > 700:
		return 3
	case expectedSales > 400:
		return 2
	default:
		return 1
	}
}

func shiftEnd(shiftStart string) string {
	hour, _ := strconv.Atoi(shiftStart[:2])
	return fmt.Sprintf("%02d:00", (hour+shiftLengthHours)%24)
}

// RecommendSchedule staffs the fixed three-shift template from the sales
// forecast and employee availability. Employees are assigned in input order
// up to the required headcount; availability is not consumed, so an
// employee listed for several shifts is assigned to all of them.
func (e *Engine) RecommendSchedule(storeID int, forecast []ForecastEntry, availability []EmployeeAvailability) ([]ShiftRecommendation, ScheduleSummary, error) {
	e.logger.Info().Int("store_id", storeID).Msg("evaluating shift schedule")

	for _, entry := range forecast {
		if entry.ExpectedSales < 0 {
			return nil, ScheduleSummary{}, fmt.Errorf("%w: negative expected sales %g for slot %s", ErrInvalidInput, entry.ExpectedSales, entry.TimeSlot)
		}
	}

	shifts := make([]ShiftRecommendation, 0, len(shiftStarts))
	var summary ScheduleSummary

	for _, start := range shiftStarts {
		expectedSales := float64(defaultExpectedSales)
		for _, entry := range forecast {
			if entry.TimeSlot == start {
				expectedSales = entry.ExpectedSales
				break
			}
		}

		required := requiredStaffFor(expectedSales)

		assigned := make([]int, 0, required)
		for _, emp := range availability {
			if len(assigned) == required {
				break
			}
			for _, slot := range emp.AvailableShifts {
				if slot == start {
					assigned = append(assigned, emp.EmployeeID)
					break
				}
			}
		}

		shortage := required - len(assigned)
		if shortage < 0 {
			shortage = 0
		}

		shifts = append(shifts, ShiftRecommendation{
			ShiftStart:        start,
			ShiftEnd:          shiftEnd(start),
			ExpectedSales:     expectedSales,
			RequiredStaff:     required,
			AssignedEmployees: assigned,
			StaffShortage:     shortage,
		})

		summary.TotalRequiredStaff += required
		summary.TotalAssignedStaff += len(assigned)
		summary.TotalStaffShortage += shortage
	}

	return shifts, summary, nil
}
