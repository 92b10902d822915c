package transaction

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidType   = errors.New("type must be Deposit or Withdrawal")
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrUnknownClient = errors.New("client not found")
)

// ClientChecker confirms a client exists before transactions are recorded.
type ClientChecker interface {
	Exists(ctx context.Context, clientID int) (bool, error)
}

type Service struct {
	repo    Repository
	clients ClientChecker
	now     func() time.Time
}

func NewService(repo Repository, clients ClientChecker) *Service {
	return &Service{repo: repo, clients: clients, now: time.Now}
}

// Statement is a client's transactions with their running total.
type Statement struct {
	ClientID     int           `json:"clientId"`
	Balance      float64       `json:"balance"`
	Transactions []Transaction `json:"transactions"`
}

func (s *Service) Statement(ctx context.Context, clientID int) (Statement, error) {
	if err := s.checkClient(ctx, clientID); err != nil {
		return Statement{}, err
	}
	txs, err := s.repo.ListByClient(ctx, clientID)
	if err != nil {
		return Statement{}, err
	}
	return Statement{ClientID: clientID, Balance: Balance(txs), Transactions: txs}, nil
}

// Record stores t for clientID, dated today when t has no date.
func (s *Service) Record(ctx context.Context, clientID int, t Transaction) (Transaction, error) {
	if t.Type != Deposit && t.Type != Withdrawal {
		return Transaction{}, ErrInvalidType
	}
	if t.Amount <= 0 {
		return Transaction{}, ErrInvalidAmount
	}
	if err := s.checkClient(ctx, clientID); err != nil {
		return Transaction{}, err
	}
	if t.Date.IsZero() {
		y, m, d := s.now().Date()
		t.Date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	t.ClientID = clientID
	return s.repo.Create(ctx, t)
}

func (s *Service) checkClient(ctx context.Context, clientID int) error {
	if s.clients == nil {
		return nil
	}
	ok, err := s.clients.Exists(ctx, clientID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnknownClient
	}
	return nil
}
