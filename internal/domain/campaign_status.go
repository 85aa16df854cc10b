package domain

import "time"

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
)

func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusActive, CampaignStatusPaused, CampaignStatusCompleted:
		return true
	}
	return false
}

type CampaignEvent string

const (
	CampaignEventActivate CampaignEvent = "activate"
	CampaignEventPause    CampaignEvent = "pause"
	CampaignEventComplete CampaignEvent = "complete"
)

// TransitionContext reúne tudo o que as regras de transição precisam saber da campanha
type TransitionContext struct {
	Today     time.Time
	StartDate time.Time
	EndDate   *time.Time
	Budget    Budget
}

// IsEligible é o predicado de ativação sem a checagem de status de origem
func (tc TransitionContext) IsEligible() bool {
	today := DateOnly(tc.Today)
	if DateOnly(tc.StartDate).After(today) {
		return false
	}
	if tc.EndDate != nil && DateOnly(*tc.EndDate).Before(today) {
		return false
	}
	return tc.Budget.IsWithinBudget()
}

// Transition aplica um evento ao status atual. O bool indica se a transição é legal;
// quando não é, o status retornado é o próprio from.
func Transition(from CampaignStatus, event CampaignEvent, tc TransitionContext) (CampaignStatus, bool) {
	switch event {
	case CampaignEventActivate:
		if (from == CampaignStatusDraft || from == CampaignStatusPaused) && tc.IsEligible() {
			return CampaignStatusActive, true
		}
	case CampaignEventPause:
		if from == CampaignStatusActive {
			return CampaignStatusPaused, true
		}
	case CampaignEventComplete:
		// Completed só é atingido por ação externa
		if from.IsValid() && from != CampaignStatusCompleted {
			return CampaignStatusCompleted, true
		}
	}
	return from, false
}

// DateOnly descarta o horário mantendo a data de calendário de t
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
