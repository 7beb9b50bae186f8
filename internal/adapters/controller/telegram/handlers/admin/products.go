package admin

import (
	"github.com/nlypage/intele/collector"
	tele "gopkg.in/telebot.v3"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
	"github.com/herbalife-clubes/admin-bot/internal/domain/utils/validator"
)

type productCallback struct {
	ID   int64
	Page string
}

func (h Handler) productsList(c tele.Context) error {
	page := parsePage(c.Callback().Data)
	h.logger.Infof("(user: %d) edit products list (page=%d)", c.Sender().ID, page)

	products, err := h.productService.List(h.ctx(c), 0)
	if err != nil {
		h.logger.Errorf("(user: %d) error while get products: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "mainMenu:backRow"))
	}

	markup := c.Bot().NewMarkup()
	var rows []tele.Row
	rows = append(rows, markup.Row(*h.layout.Button(c, "admin:products:create", struct{ Page int }{Page: page})))
	for _, product := range pageOf(products, page) {
		rows = append(rows, markup.Row(*h.layout.Button(c, "admin:products:product", struct {
			ID     int64
			Name   string
			Status entity.ProductStatus
			Page   int
		}{
			ID:     product.ID,
			Name:   product.Name,
			Status: product.Status,
			Page:   page,
		})))
	}
	h.pager(c, markup, rows, "admin:products", page, len(products))

	return c.Edit(
		h.layout.Text(c, "products_list", len(products)),
		markup,
	)
}

func (h Handler) productMenu(c tele.Context) error {
	productID, page, err := callbackIDPage(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) edit product menu (product_id=%d)", c.Sender().ID, productID)

	product, err := h.productService.Get(h.ctx(c), productID)
	if err != nil {
		h.logger.Errorf("(user: %d) error while get product: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "admin:products:backRow", struct{ Page string }{Page: page}))
	}

	data := productCallback{ID: productID, Page: page}
	markup := c.Bot().NewMarkup()
	var rows []tele.Row
	rows = append(rows, markup.Row(*h.layout.Button(c, "admin:product:edit", data)))
	if product.Status == entity.ProductActive {
		rows = append(rows, markup.Row(*h.layout.Button(c, "admin:product:deactivate", data)))
	} else {
		rows = append(rows, markup.Row(*h.layout.Button(c, "admin:product:activate", data)))
	}
	rows = append(rows, markup.Row(*h.layout.Button(c, "admin:products:back", struct{ Page string }{Page: page})))
	markup.Inline(rows...)

	return c.Edit(
		h.layout.Text(c, "admin_product_menu_text", product),
		markup,
	)
}

// createProductPicker lists active clubs; the new product hangs off the
// picked club's hub.
func (h Handler) createProductPicker(c tele.Context) error {
	h.logger.Infof("(user: %d) create product request", c.Sender().ID)

	clubs, err := h.clubService.ListActive(h.ctx(c))
	if err != nil {
		h.logger.Errorf("(user: %d) error while get active clubs: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "admin:products:backRow", struct{ Page string }{Page: "0"}))
	}
	if len(clubs) == 0 {
		return c.Edit(
			h.layout.Text(c, "no_active_clubs"),
			h.layout.Markup(c, "admin:products:backRow", struct{ Page string }{Page: "0"}),
		)
	}

	markup := c.Bot().NewMarkup()
	var rows []tele.Row
	for _, club := range clubs {
		rows = append(rows, markup.Row(*h.layout.Button(c, "admin:products:create_club", struct {
			ID   int64
			Name string
		}{
			ID:   club.ID,
			Name: club.Name,
		})))
	}
	rows = append(rows, markup.Row(*h.layout.Button(c, "admin:products:back", struct{ Page string }{Page: "0"})))
	markup.Inline(rows...)

	return c.Edit(
		h.layout.Text(c, "pick_club_for_product"),
		markup,
	)
}

func (h Handler) createProduct(c tele.Context) error {
	clubID, err := callbackID(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) create product (club_id=%d)", c.Sender().ID, clubID)

	backMarkup := h.layout.Markup(c, "admin:products:backRow", struct{ Page string }{Page: "0"})

	inputCollector := collector.New()
	inputCollector.Collect(c.Message())
	_ = c.Edit(h.layout.Text(c, "input_product_name"), backMarkup)
	name, canceled := h.collectInput(c, inputCollector, "input_product_name", "invalid_product_name", backMarkup, validator.ProductName)
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_product_description"), backMarkup)
	description, canceled := h.collectInput(c, inputCollector, "input_product_description", "invalid_product_description", backMarkup, optional(validator.ProductDescription))
	if canceled {
		return nil
	}
	_ = inputCollector.Clear(c, collector.ClearOptions{IgnoreErrors: true})

	product, err := h.productService.Create(h.ctx(c), &entity.Product{
		Name:        name,
		Description: skipValue(description),
	}, clubID)
	if err != nil {
		h.logger.Errorf("(user: %d) error while create product: %v", c.Sender().ID, err)
		return h.sendError(c, err, backMarkup)
	}

	h.logger.Infof("(user: %d) product created (product_id=%d)", c.Sender().ID, product.ID)
	return c.Send(
		h.layout.Text(c, "product_created", product),
		backMarkup,
	)
}

func (h Handler) editProduct(c tele.Context) error {
	productID, page, err := callbackIDPage(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) edit product request (product_id=%d)", c.Sender().ID, productID)

	backMarkup := h.layout.Markup(c, "admin:product:backRow", productCallback{ID: productID, Page: page})

	product, err := h.productService.Get(h.ctx(c), productID)
	if err != nil {
		h.logger.Errorf("(user: %d) error while get product: %v", c.Sender().ID, err)
		return h.editError(c, err, backMarkup)
	}

	inputCollector := collector.New()
	inputCollector.Collect(c.Message())
	_ = c.Edit(h.layout.Text(c, "input_product_name_edit", product.Name), backMarkup)
	name, canceled := h.collectInput(c, inputCollector, "input_product_name_edit", "invalid_product_name", backMarkup, optional(validator.ProductName))
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_product_description_edit", product.Description), backMarkup)
	description, canceled := h.collectInput(c, inputCollector, "input_product_description_edit", "invalid_product_description", backMarkup, optional(validator.ProductDescription))
	if canceled {
		return nil
	}
	_ = inputCollector.Clear(c, collector.ClearOptions{IgnoreErrors: true})

	if name != skipToken {
		product.Name = name
	}
	if description != skipToken {
		product.Description = description
	}

	updated, err := h.productService.Update(h.ctx(c), product)
	if err != nil {
		h.logger.Errorf("(user: %d) error while update product: %v", c.Sender().ID, err)
		return h.sendError(c, err, backMarkup)
	}

	h.logger.Infof("(user: %d) product updated (product_id=%d)", c.Sender().ID, updated.ID)
	return c.Send(
		h.layout.Text(c, "product_updated", updated),
		backMarkup,
	)
}

func (h Handler) activateProduct(c tele.Context) error {
	productID, page, err := callbackIDPage(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) activate product (product_id=%d)", c.Sender().ID, productID)

	if err = h.productService.Activate(h.ctx(c), productID); err != nil {
		h.logger.Errorf("(user: %d) error while activate product: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "admin:product:backRow", productCallback{ID: productID, Page: page}))
	}
	return h.productMenu(c)
}

func (h Handler) deactivateProduct(c tele.Context) error {
	productID, page, err := callbackIDPage(c)
	if err != nil {
		return err
	}
	return c.Edit(
		h.layout.Text(c, "confirm_deactivate_product", productID),
		h.layout.Markup(c, "admin:product:deactivateConfirm", productCallback{ID: productID, Page: page}),
	)
}

func (h Handler) confirmDeactivateProduct(c tele.Context) error {
	productID, page, err := callbackIDPage(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) deactivate product (product_id=%d)", c.Sender().ID, productID)

	if err = h.productService.Deactivate(h.ctx(c), productID); err != nil {
		h.logger.Errorf("(user: %d) error while deactivate product: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "admin:product:backRow", productCallback{ID: productID, Page: page}))
	}
	return h.productMenu(c)
}
