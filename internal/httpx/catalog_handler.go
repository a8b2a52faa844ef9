package httpx

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/alorahq/marketplace/internal/catalog"
	"github.com/alorahq/marketplace/internal/storage"
)

const maxUploadBytes = 32 << 20

type CatalogHandler struct {
	Service *catalog.Service
	Uploads *storage.Disk
}

func (h *CatalogHandler) Register(r chi.Router) {
	r.Get("/products/recent", h.recent)
	r.Get("/products/search", h.search)
	r.Get("/products/{id}", h.get)
}

func (h *CatalogHandler) RegisterProtected(r chi.Router) {
	r.Post("/products", h.publish)
	r.Get("/products/mine", h.mine)
	r.Delete("/products/{id}", h.delete)
}

func (h *CatalogHandler) recent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	products, err := h.Service.Recent(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	if products == nil {
		products = []catalog.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) search(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	products, err := h.Service.Search(ctx, r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	if products == nil {
		products = []catalog.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid product id"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	p, err := h.Service.Get(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// publish accepts a multipart form: name, description, price, quantity plus
// up to five files under image1..image5. Files land on disk first; rows keep
// relative paths only.
func (h *CatalogHandler) publish(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form"})
		return
	}
	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid price"})
		return
	}
	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid quantity"})
		return
	}

	var images []string
	// A rejected listing must not leave files behind.
	discard := func() {
		for _, img := range images {
			_ = h.Uploads.Remove(img)
		}
	}
	for i := 1; i <= catalog.MaxImages; i++ {
		file, header, err := r.FormFile(fmt.Sprintf("image%d", i))
		if err != nil {
			continue // slot not supplied
		}
		path, err := h.Uploads.Save(file, header.Filename)
		file.Close()
		if err != nil {
			discard()
			writeError(w, err)
			return
		}
		images = append(images, path)
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	claims := ClaimsFrom(r.Context())
	id, err := h.Service.Publish(ctx, catalog.PublishInput{
		SellerID:    claims.UserID,
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Price:       price,
		Stock:       quantity,
		Images:      images,
	})
	if err != nil {
		discard()
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"product_id": id})
}

func (h *CatalogHandler) mine(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	claims := ClaimsFrom(r.Context())
	products, err := h.Service.ListBySeller(ctx, claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	if products == nil {
		products = []catalog.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid product id"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	claims := ClaimsFrom(r.Context())
	if err := h.Service.Delete(ctx, id, claims.UserID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
