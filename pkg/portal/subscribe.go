package portal

import (
	"strings"
	"time"

	"github.com/badoux/checkmail"
	"github.com/chenkham/appfolio/pkg/mongo"
)

type SubscribeResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Subscribe adds an email to the newsletter list. The existence check and the
// create are separate store calls, so two near-simultaneous signups with the
// same email can both pass the check and both be stored.
//
// A duplicate is a normal outcome, reported in the result. A store failure is
// returned as an error for the caller to turn into a generic message.
func (p *Portal) Subscribe(email string) (SubscribeResult, error) {

	email = strings.TrimSpace(email)

	err := checkmail.ValidateFormat(email)
	if err != nil {
		return SubscribeResult{Success: false, Message: "Please enter a valid email address"}, nil
	}

	count, err := p.store.CountSubscribers(email)
	if err != nil {
		return SubscribeResult{}, err
	}

	if count > 0 {
		return SubscribeResult{Success: false, Message: "Email already subscribed!"}, nil
	}

	err = p.store.InsertSubscriber(&mongo.Subscriber{
		Email:        email,
		SubscribedAt: time.Now(),
		IsActive:     true,
	})
	if err != nil {
		return SubscribeResult{}, err
	}

	return SubscribeResult{Success: true, Message: "Successfully subscribed!"}, nil
}
