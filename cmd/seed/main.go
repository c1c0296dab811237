package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"

	"bookstore-be/internal/book"
	"bookstore-be/internal/config"
	"bookstore-be/internal/db"
	"bookstore-be/internal/order"
)

var titles = []string{
	"Đắc Nhân Tâm",
	"Nhà Giả Kim",
	"Tuổi Trẻ Đáng Giá Bao Nhiêu",
	"Cà Phê Cùng Tony",
	"Tôi Thấy Hoa Vàng Trên Cỏ Xanh",
	"Mắt Biếc",
	"Số Đỏ",
	"Dế Mèn Phiêu Lưu Ký",
	"Lược Sử Thời Gian",
	"Sapiens",
	"Atomic Habits",
	"Deep Work",
	"Clean Code",
	"The Pragmatic Programmer",
	"Thinking, Fast and Slow",
	"Zero to One",
	"The Lean Startup",
	"Harry Potter và Hòn Đá Phù Thủy",
	"Chúa Tể Những Chiếc Nhẫn",
	"Ba Người Lính Ngự Lâm",
}

var genres = []string{"Kỹ năng sống", "Văn học", "Khoa học", "Kinh doanh", "Công nghệ", "Thiếu nhi"}

var shelves = []string{"A1", "A2", "B1", "B2", "C1", "C2", "D1", "D2"}

func main() {
	wipe := flag.Bool("wipe", true, "clear existing books and orders before seeding")
	orderCount := flag.Int("orders", 5, "number of sample orders to create")
	flag.Parse()

	cfg := config.LoadConfig()
	database := db.InitDB(cfg)
	defer database.Close()

	ctx := context.Background()

	if *wipe {
		for _, table := range []string{"order_items", "orders", "books"} {
			if _, err := database.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				log.Fatalf("Failed to clear %s: %v", table, err)
			}
		}
		log.Println("Cleared existing catalog and orders")
	}

	bookRepo := book.NewRepository(database)
	orderRepo := order.NewRepository(database)

	var created []book.Book
	for i, title := range titles {
		buy := int64(rand.Intn(100)+50) * 1000
		sell := buy + buy*int64(rand.Intn(40)+20)/100

		b, err := bookRepo.Insert(ctx, book.Book{
			Title:         title,
			Author:        fmt.Sprintf("Tác giả %d", i+1),
			Genre:         genres[rand.Intn(len(genres))],
			Description:   fmt.Sprintf("Sách hay về %s.", genres[rand.Intn(len(genres))]),
			ShelfPosition: shelves[rand.Intn(len(shelves))],
			BuyPrice:      buy,
			SellPrice:     sell,
			Stock:         int64(rand.Intn(25) + 5),
		})
		if err != nil {
			log.Fatalf("Failed to insert %q: %v", title, err)
		}
		created = append(created, b)
	}
	log.Printf("Inserted %d books", len(created))

	for i := 0; i < *orderCount; i++ {
		lineCount := rand.Intn(4) + 2
		var items []order.LineItemInput
		for j := 0; j < lineCount; j++ {
			b := created[rand.Intn(len(created))]
			qty := int64(rand.Intn(3) + 1)
			items = append(items, order.LineItemInput{
				BookID:    b.ID,
				Quantity:  qty,
				UnitPrice: b.SellPrice,
				Total:     b.SellPrice * qty,
			})
		}

		o, err := orderRepo.CreateOrder(ctx, items)
		if err != nil {
			log.Fatalf("Failed to create sample order: %v", err)
		}
		log.Printf("Created order %s: %d items, %d VND", o.ID, o.TotalQty, o.TotalAmount)
	}

	log.Println("Seeding complete")
}
