package bancogo

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type TellerMiddleware func(Teller) Teller

// loggingMiddleware records every operation performed on a logged-in account.
type loggingMiddleware struct {
	next Teller
	log  *zerolog.Logger
}

var (
	_ Teller = (*loggingMiddleware)(nil)
)

func NewLoggingMiddleware(log *zerolog.Logger) TellerMiddleware {
	return func(next Teller) Teller {
		return &loggingMiddleware{
			next: next,
			log:  log,
		}
	}
}

func (l *loggingMiddleware) Deposit(amount decimal.Decimal) (*decimal.Decimal, error) {
	bal, err := l.next.Deposit(amount)
	l.event(err).
		Str("method", "deposit").
		Int("conta", l.next.Account().Number).
		Str("valor", amount.StringFixed(2)).
		Msg("teller operation")
	return bal, err
}

func (l *loggingMiddleware) Withdraw(amount decimal.Decimal) (*decimal.Decimal, error) {
	bal, err := l.next.Withdraw(amount)
	l.event(err).
		Str("method", "withdraw").
		Int("conta", l.next.Account().Number).
		Str("valor", amount.StringFixed(2)).
		Msg("teller operation")
	return bal, err
}

func (l *loggingMiddleware) Statement() Statement {
	l.log.Debug().
		Str("method", "statement").
		Int("conta", l.next.Account().Number).
		Msg("teller operation")
	return l.next.Statement()
}

func (l *loggingMiddleware) Account() Account {
	return l.next.Account()
}

func (l *loggingMiddleware) event(err error) *zerolog.Event {
	if err != nil {
		return l.log.Warn().Err(err)
	}
	return l.log.Info()
}
