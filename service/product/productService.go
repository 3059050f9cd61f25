package product

import (
	"context"
	"errors"

	"github.com/PKL-SST-2025/camp-rent-sub000/model"
)

var ErrNotFound = errors.New("product not found")

type Repo interface {
	List(ctx context.Context) ([]model.Product, error)
	Detail(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, p model.Product) (int64, error)
}

type Service interface {
	List(ctx context.Context) ([]model.Product, error)
	Detail(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, p model.Product) (int64, error)

	// Seed fills an empty catalog with the demo camping gear.
	Seed(ctx context.Context) error
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context) ([]model.Product, error) { return s.r.List(ctx) }

func (s *service) Detail(ctx context.Context, id int64) (*model.Product, error) {
	p, err := s.r.Detail(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *service) Create(ctx context.Context, p model.Product) (int64, error) {
	if p.Name == "" || p.Category == "" || p.Price < 0 {
		return 0, errors.New("invalid payload")
	}
	return s.r.Create(ctx, p)
}

var seedCatalog = []model.Product{
	{Name: "Tenda Dome 4P", Category: "tenda", Price: 50000, Image: "/img/tenda-dome.jpg", Description: "Tenda dome kapasitas 4 orang, double layer"},
	{Name: "Sleeping Bag Polar", Category: "tidur", Price: 15000, Image: "/img/sleeping-bag.jpg", Description: "Sleeping bag bahan polar, comfort 10°C"},
	{Name: "Kompor Portable", Category: "masak", Price: 20000, Image: "/img/kompor.jpg", Description: "Kompor lipat satu tungku + windshield"},
	{Name: "Carrier 60L", Category: "tas", Price: 35000, Image: "/img/carrier-60l.jpg", Description: "Tas carrier 60 liter dengan rain cover"},
	{Name: "Lampu Tenda LED", Category: "penerangan", Price: 10000, Image: "/img/lampu-led.jpg", Description: "Lampu gantung LED, baterai AA"},
	{Name: "Matras Camping", Category: "tidur", Price: 8000, Image: "/img/matras.jpg", Description: "Matras gulung 180x60 cm"},
}

func (s *service) Seed(ctx context.Context) error {
	have, err := s.r.List(ctx)
	if err != nil {
		return err
	}
	if len(have) > 0 {
		return nil
	}
	for _, p := range seedCatalog {
		if _, err := s.r.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
