package main

import (
	"context"
	"errors"
	"log"

	"github.com/hellok1tta/bakery-shop/internal/config"
	"github.com/hellok1tta/bakery-shop/internal/db"
	"github.com/hellok1tta/bakery-shop/internal/hash"
	"github.com/hellok1tta/bakery-shop/internal/models"
	"github.com/hellok1tta/bakery-shop/internal/store"
)

func ptr(v float64) *float64 { return &v }

func main() {
	cfg := config.Load()
	ctx := context.Background()

	gdb, err := db.Open(ctx, cfg.DatabaseURL, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Ошибка инициализации БД: %v", err)
	}
	st := store.New(gdb)

	pwHash, err := hash.HashPassword("password123")
	if err != nil {
		log.Fatalf("Ошибка хеширования пароля: %v", err)
	}

	if _, err := st.Register(ctx, "Иван Иванов", "test@example.com", pwHash); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			log.Println("Тестовый пользователь уже существует")
		} else {
			log.Fatalf("Ошибка создания пользователя: %v", err)
		}
	} else {
		log.Println("Тестовый пользователь добавлен (test@example.com / password123)")
	}

	employees := []models.Employee{
		{
			Name:        "Иван Петров",
			Position:    "Главный пекарь",
			Description: "Опыт работы более 15 лет. Специализируется на традиционном хлебе и выпечке.",
			Experience:  "15 лет",
			Photo:       "images/ivan.jpg",
		},
		{
			Name:        "Мария Сидорова",
			Position:    "Кондитер",
			Description: "Создает потрясающие десерты и торты. Проходила стажировку во Франции.",
			Experience:  "12 лет",
			Photo:       "images/maria.jpg",
		},
		{
			Name:        "Елена Новикова",
			Position:    "Управляющая",
			Description: "Обеспечивает бесперебойную работу пекарни и заботится о каждом клиенте.",
			Experience:  "10 лет",
			Photo:       "images/elena.jpg",
		},
	}
	for i := range employees {
		if _, err := st.CreateEmployee(ctx, &employees[i]); err != nil {
			log.Printf("Сотрудник %s: %v", employees[i].Name, err)
		}
	}
	log.Printf("Сотрудники добавлены: %d", len(employees))

	products := []models.Product{
		{
			Name:        "Ржаной хлеб",
			Price:       150,
			Description: "Традиционный ржаной хлеб с хрустящей корочкой, приготовленный по старинному рецепту",
			ImageURL:    "images/hleb.jpg",
			Category:    "Хлеб",
			Weight:      "500 г",
			IsPopular:   true,
		},
		{
			Name:        "Круассан с миндалём",
			Price:       220,
			Description: "Слоёный круассан с миндальным кремом",
			ImageURL:    "images/croissant.jpg",
			Category:    "Выпечка",
			Weight:      "90 г",
			IsNew:       true,
			IsPopular:   true,
		},
		{
			Name:        "Торт «Медовик»",
			Price:       890,
			Description: "Классический медовый торт со сметанным кремом",
			ImageURL:    "images/medovik.jpg",
			Category:    "Торты",
			Weight:      "1 кг",
			OnSale:      true,
			OldPrice:    ptr(990),
		},
		{
			Name:        "Багет французский",
			Price:       120,
			Description: "Хрустящий багет на пшеничной муке",
			ImageURL:    "images/baguette.jpg",
			Category:    "Хлеб",
			Weight:      "350 г",
		},
	}
	for i := range products {
		if _, err := st.CreateProduct(ctx, &products[i]); err != nil {
			log.Printf("Товар %s: %v", products[i].Name, err)
		}
	}
	log.Printf("Товары добавлены: %d", len(products))

	shops := []models.Shop{
		{
			Address:      "ул. Пекарная, 1",
			Phone:        "+7 (900) 123-45-67",
			Email:        "main@bakery.example",
			WorkingHours: "08:00–20:00",
			Latitude:     ptr(55.7558),
			Longitude:    ptr(37.6173),
		},
		{
			Address:      "пр. Хлебный, 12",
			Phone:        "+7 (900) 765-43-21",
			WorkingHours: "09:00–21:00",
		},
	}
	for i := range shops {
		if _, err := st.CreateShop(ctx, &shops[i]); err != nil {
			log.Printf("Магазин %s: %v", shops[i].Address, err)
		}
	}
	log.Printf("Магазины добавлены: %d", len(shops))

	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Println("Наполнение базы завершено")
}
