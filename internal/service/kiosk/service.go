package kiosk

import (
	"bytes"
	"context"
	"crypto/rand"
	"fmt"
	"image/png"
	"math/big"
	"time"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/checadormx/checador-backend-go/internal/domain/attendance"
	"github.com/checadormx/checador-backend-go/internal/domain/employee"
	"github.com/checadormx/checador-backend-go/internal/domain/kiosk"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenLength     = 6
	tokenAlphabet   = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	barcodeWidthPx  = 400
	barcodeHeightPx = 120
)

type kioskService struct {
	employees employee.EmployeeRepository
	punches   attendance.PunchService
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewKioskService(employees employee.EmployeeRepository, punches attendance.PunchService, tokenTTL time.Duration) kiosk.KioskService {
	return &kioskService{
		employees: employees,
		punches:   punches,
		tokenTTL:  tokenTTL,
		now:       time.Now,
	}
}

// IssueToken implements kiosk.KioskService. Every call overwrites the
// stored token, so the previous one stops validating immediately.
func (s *kioskService) IssueToken(ctx context.Context, cardUUID string) (kiosk.CardResponse, error) {
	e, err := s.employees.GetByCardUUID(ctx, cardUUID)
	if err != nil {
		return kiosk.CardResponse{}, err
	}
	if !e.Active {
		return kiosk.CardResponse{}, employee.ErrEmployeeInactive
	}

	token, err := generateToken()
	if err != nil {
		return kiosk.CardResponse{}, err
	}

	expiresAt := s.now().Add(s.tokenTTL)
	if err := s.employees.SetKioskToken(ctx, e.ID, token, expiresAt); err != nil {
		return kiosk.CardResponse{}, err
	}

	return kiosk.CardResponse{
		EmployeeName: e.FullName,
		Token:        token,
		ExpiresAt:    expiresAt,
		TTLSeconds:   int(s.tokenTTL.Seconds()),
	}, nil
}

// CardBarcode implements kiosk.KioskService.
func (s *kioskService) CardBarcode(ctx context.Context, cardUUID string) ([]byte, error) {
	card, err := s.IssueToken(ctx, cardUUID)
	if err != nil {
		return nil, err
	}

	code, err := code128.Encode(card.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to encode barcode: %w", err)
	}
	scaled, err := barcode.Scale(code, barcodeWidthPx, barcodeHeightPx)
	if err != nil {
		return nil, fmt.Errorf("failed to scale barcode: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("failed to render barcode: %w", err)
	}
	return buf.Bytes(), nil
}

// Punch implements kiosk.KioskService.
func (s *kioskService) Punch(ctx context.Context, req kiosk.PunchRequest) (kiosk.PunchResult, error) {
	if err := req.Validate(); err != nil {
		return kiosk.PunchResult{}, err
	}

	e, err := s.authenticate(ctx, req)
	if err != nil {
		return kiosk.PunchResult{}, err
	}

	checkReq := attendance.CheckRequest{EmployeeID: e.ID}
	var resp attendance.PunchResponse
	if req.Direction == kiosk.DirectionIn {
		resp, err = s.punches.CheckIn(ctx, checkReq)
	} else {
		resp, err = s.punches.CheckOut(ctx, checkReq)
	}
	if err != nil {
		return kiosk.PunchResult{}, err
	}

	at := resp.CreatedAt
	if req.Direction == kiosk.DirectionIn && resp.CheckIn != nil {
		at = *resp.CheckIn
	} else if req.Direction == kiosk.DirectionOut && resp.CheckOut != nil {
		at = *resp.CheckOut
	}

	return kiosk.PunchResult{
		EmployeeName: e.FullName,
		Direction:    req.Direction,
		At:           at,
	}, nil
}

func (s *kioskService) authenticate(ctx context.Context, req kiosk.PunchRequest) (employee.Employee, error) {
	if req.Token != "" {
		e, err := s.employees.GetByKioskToken(ctx, req.Token, s.now())
		if err != nil {
			if err == employee.ErrEmployeeNotFound {
				return employee.Employee{}, kiosk.ErrInvalidToken
			}
			return employee.Employee{}, err
		}
		return e, nil
	}

	e, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return employee.Employee{}, err
	}
	if e.PINHash == nil {
		return employee.Employee{}, kiosk.ErrNoPIN
	}
	if bcrypt.CompareHashAndPassword([]byte(*e.PINHash), []byte(req.PIN)) != nil {
		return employee.Employee{}, kiosk.ErrInvalidPIN
	}
	return e, nil
}

func generateToken() (string, error) {
	max := big.NewInt(int64(len(tokenAlphabet)))
	token := make([]byte, tokenLength)
	for i := range token {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate token: %w", err)
		}
		token[i] = tokenAlphabet[n.Int64()]
	}
	return string(token), nil
}
