package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Weekday segue a ISO 8601: segunda = 1 ... domingo = 7
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

func (d Weekday) IsValid() bool {
	return d >= Monday && d <= Sunday
}

func (d Weekday) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return time.Weekday(int(d) % 7).String()
}

// ISOWeekday retorna o dia da semana do horário informado, sem conversão de fuso
func ISOWeekday(t time.Time) Weekday {
	wd := t.Weekday()
	if wd == time.Sunday {
		return Sunday
	}
	return Weekday(wd)
}

// TimeOfDay é um horário de parede representado como deslocamento desde a meia-noite
type TimeOfDay time.Duration

const endOfDay = TimeOfDay(24 * time.Hour)

func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute + time.Duration(second)*time.Second)
}

// TimeOfDayOf extrai o horário de parede de t, com precisão de nanossegundos
func TimeOfDayOf(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute(), t.Second()) + TimeOfDay(t.Nanosecond())
}

// ParseTimeOfDay aceita "15:04" ou "15:04:05", com fração de segundos opcional
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04:05.999999999", "15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDayOf(t), nil
		}
	}
	return 0, fmt.Errorf("%w: cannot parse time of day %q", ErrInvalidSchedule, s)
}

func (t TimeOfDay) IsValid() bool {
	return t >= 0 && t < endOfDay
}

func (t TimeOfDay) String() string {
	d := time.Duration(t)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	out := fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	if ns := d % time.Second; ns != 0 {
		out += strings.TrimRight(fmt.Sprintf(".%09d", ns), "0")
	}
	return out
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	parsed, err := ParseTimeOfDay(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Scan aceita tanto time.Time (lib/pq para colunas TIME) quanto texto
func (t *TimeOfDay) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*t = TimeOfDayOf(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}
}

func (t *TimeOfDay) scanString(s string) error {
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

// DaypartingSchedule é uma janela semanal recorrente de veiculação de uma campanha
type DaypartingSchedule struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaign_id"`
	DayOfWeek  Weekday   `json:"day_of_week"`
	StartTime  TimeOfDay `json:"start_time"`
	EndTime    TimeOfDay `json:"end_time"`
	IsActive   bool      `json:"is_active"`
}

func (s DaypartingSchedule) Validate() error {
	if !s.DayOfWeek.IsValid() {
		return fmt.Errorf("%w: day of week must be between 1 and 7, got %d", ErrInvalidSchedule, s.DayOfWeek)
	}
	if !s.StartTime.IsValid() || !s.EndTime.IsValid() {
		return fmt.Errorf("%w: times must be within a single day", ErrInvalidSchedule)
	}
	if s.StartTime > s.EndTime {
		return fmt.Errorf("%w: start time %s is after end time %s", ErrInvalidSchedule, s.StartTime, s.EndTime)
	}
	return nil
}

// IsWithinSchedule usa o intervalo fechado [StartTime, EndTime]
func (s DaypartingSchedule) IsWithinSchedule(at time.Time) bool {
	if !s.IsActive {
		return false
	}
	if ISOWeekday(at) != s.DayOfWeek {
		return false
	}

	current := TimeOfDayOf(at)
	return s.StartTime <= current && current <= s.EndTime
}

// ScheduleSet agrupa todas as janelas de uma campanha
type ScheduleSet []DaypartingSchedule

func (ss ScheduleSet) Active() ScheduleSet {
	active := make(ScheduleSet, 0, len(ss))
	for _, s := range ss {
		if s.IsActive {
			active = append(active, s)
		}
	}
	return active
}

// IsConstrained indica se há pelo menos uma janela ativa
func (ss ScheduleSet) IsConstrained() bool {
	for _, s := range ss {
		if s.IsActive {
			return true
		}
	}
	return false
}

// IsWithinSchedule faz o OR entre as janelas ativas. Sem janelas ativas a campanha não tem restrição.
func (ss ScheduleSet) IsWithinSchedule(at time.Time) bool {
	if !ss.IsConstrained() {
		return true
	}
	for _, s := range ss {
		if s.IsWithinSchedule(at) {
			return true
		}
	}
	return false
}

// Validate também garante no máximo uma janela por dia da semana
func (ss ScheduleSet) Validate() error {
	seen := make(map[Weekday]struct{}, len(ss))
	for _, s := range ss {
		if err := s.Validate(); err != nil {
			return err
		}
		if _, dup := seen[s.DayOfWeek]; dup {
			return fmt.Errorf("%w: more than one schedule for %s", ErrInvalidSchedule, s.DayOfWeek)
		}
		seen[s.DayOfWeek] = struct{}{}
	}
	return nil
}
