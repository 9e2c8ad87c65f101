package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"
)

const baseURL = "http://localhost:8080"

var queries = []string{"", "burger", "pizza", "cola", "salad"}

// Нагрузочный клиент: меню без авторизации и заказ по id с токеном из TOKEN.
func main() {
	token := os.Getenv("TOKEN")
	orderID := os.Getenv("ORDER_ID")

	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() { doRequest(token, orderID) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomID() string {
	chars := []rune("0123456789abcdef")
	id := make([]rune, 32)
	for i := range id {
		id[i] = chars[rand.Intn(len(chars))]
	}
	s := string(id)
	return s[:8] + "-" + s[8:12] + "-" + s[12:16] + "-" + s[16:20] + "-" + s[20:]
}

func doRequest(token, orderID string) {
	url := baseURL + "/products?q=" + queries[rand.Intn(len(queries))]
	if token != "" && rand.Intn(2) == 0 {
		id := orderID
		if id == "" || rand.Intn(5) == 0 {
			id = randomID()
		}
		url = baseURL + "/orders/" + id
	}

	req, _ := http.NewRequest(http.MethodGet, url, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println("GET", url, "->", resp.Status)
	resp.Body.Close()
}
