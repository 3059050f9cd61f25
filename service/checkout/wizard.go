package checkout

import "errors"

// Step of the checkout wizard: info → review → payment → completed.
// A declined payment keeps the wizard on the payment step for resubmission.
type Step string

const (
	StepInfo      Step = "info"
	StepReview    Step = "review"
	StepPayment   Step = "payment"
	StepCompleted Step = "completed"
)

var ErrTransition = errors.New("invalid checkout step transition")

type Wizard struct {
	step Step
}

func NewWizard() *Wizard { return &Wizard{step: StepInfo} }

func (w *Wizard) Step() Step { return w.step }

// ToReview leaves the info step. It refuses while any validation message is
// outstanding, so an invalid form can never advance the wizard.
func (w *Wizard) ToReview(validationMsgs []string) error {
	if w.step != StepInfo {
		return ErrTransition
	}
	if len(validationMsgs) > 0 {
		return ErrTransition
	}
	w.step = StepReview
	return nil
}

func (w *Wizard) ToPayment() error {
	if w.step != StepReview {
		return ErrTransition
	}
	w.step = StepPayment
	return nil
}

// Back is always allowed from review and payment.
func (w *Wizard) Back() error {
	switch w.step {
	case StepReview:
		w.step = StepInfo
	case StepPayment:
		w.step = StepReview
	default:
		return ErrTransition
	}
	return nil
}

// Complete finishes the wizard after a successful charge. A declined charge
// performs no transition at all: the wizard stays on payment and the whole
// submission is retried manually.
func (w *Wizard) Complete() error {
	if w.step != StepPayment {
		return ErrTransition
	}
	w.step = StepCompleted
	return nil
}
