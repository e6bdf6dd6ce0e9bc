package selling

import (
	"context"
	"time"

	"github.com/minimarket/backoffice-api/infrastructure/repository"
	"github.com/minimarket/backoffice-api/internal/domain"
	"github.com/minimarket/backoffice-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// saleTimestampLayout é o formato gravado em ventas.fecha_venta, o mesmo que o
// relatório de lucros interpreta depois
const saleTimestampLayout = "01/02/2006, 15:04:05"

var (
	// ErrEmptySale indica uma tentativa de registrar venda sem linhas
	ErrEmptySale = errors.New("nenhum produto informado para a venda")
	// ErrInvalidQuantity indica uma linha com quantidade menor que 1
	ErrInvalidQuantity = errors.New("quantidade inválida na linha de venda")
)

type SellingService interface {
	// CreateSale registra uma venda com suas linhas, carimbando o timestamp
	// no fuso da loja e gerando um código de recibo
	CreateSale(ctx context.Context, lines []*domain.NewSaleLine) (*domain.Sale, error)
}

type Service struct {
	saleRepository repository.SaleRepository
	location       *time.Location
	now            func() time.Time
}

func NewService(saleRepo repository.SaleRepository, loc *time.Location) SellingService {
	if loc == nil {
		loc = time.Local
	}

	return &Service{
		saleRepository: saleRepo,
		location:       loc,
		now:            time.Now,
	}
}

func (s *Service) CreateSale(ctx context.Context, lines []*domain.NewSaleLine) (*domain.Sale, error) {
	if len(lines) == 0 {
		return nil, ErrEmptySale
	}

	saleLines := make([]*domain.SaleLine, 0, len(lines))
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, errors.Wrapf(ErrInvalidQuantity, "produto %d", line.ProductID)
		}

		saleLines = append(saleLines, &domain.SaleLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	receiptCode, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar código de recibo")
	}

	sale := &domain.Sale{
		ReceiptCode: receiptCode,
		SoldAt:      s.now().In(s.location).Format(saleTimestampLayout),
		Lines:       saleLines,
	}

	created, err := s.saleRepository.Create(ctx, sale)
	if err != nil {
		logrus.WithError(err).Error("Erro ao persistir a venda")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"sale_id":      created.ID,
		"receipt_code": created.ReceiptCode,
		"lines":        len(created.Lines),
	}).Info("Venda registrada")

	return created, nil
}
