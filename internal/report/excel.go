package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/gasgestao/gestao-plus/internal/domain/customer"
	"github.com/gasgestao/gestao-plus/internal/domain/product"
	"github.com/gasgestao/gestao-plus/internal/domain/sale"
)

// dateLayout é o formato de data usado nos relatórios (pt-BR)
const dateLayout = "02/01/2006"

const sheet = "Sheet1"

// notAvailable preenche referências que não puderam ser resolvidas
const notAvailable = "N/A"

// writeRow grava uma linha de valores a partir da coluna A
func writeRow(f *excelize.File, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func writeReport(w io.Writer, headers []string, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	headerRow := make([]interface{}, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := writeRow(f, 1, headerRow); err != nil {
		return fmt.Errorf("erro ao gravar cabeçalho: %w", err)
	}

	for i, row := range rows {
		if err := writeRow(f, i+2, row); err != nil {
			return fmt.Errorf("erro ao gravar linha %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("erro ao gravar planilha: %w", err)
	}
	return nil
}

// WriteSalesReport gera o relatório de vendas, resolvendo o cliente de cada
// venda quando possível
func WriteSalesReport(w io.Writer, sales []sale.Sale, customers []customer.Customer) error {
	byID := make(map[string]customer.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	headers := []string{
		"ID da Venda", "Data", "Cliente", "Documento", "Subtotal", "Desconto",
		"Taxa de Entrega", "Total", "Forma de Pagamento", "Status", "Itens",
	}

	rows := make([][]interface{}, 0, len(sales))
	for _, s := range sales {
		name, document := notAvailable, notAvailable
		if c, ok := byID[s.CustomerID]; ok {
			name, document = c.Name, c.Document
		}
		rows = append(rows, []interface{}{
			s.ID,
			s.Date.Format(dateLayout),
			name,
			document,
			s.Subtotal.InexactFloat64(),
			s.Discount.InexactFloat64(),
			s.DeliveryFee.InexactFloat64(),
			s.Total.InexactFloat64(),
			s.PaymentMethod,
			string(s.Status),
			len(s.Items),
		})
	}

	return writeReport(w, headers, rows)
}

// WriteCustomersReport gera o relatório de clientes
func WriteCustomersReport(w io.Writer, customers []customer.Customer) error {
	headers := []string{
		"ID", "Nome", "Documento", "Telefone", "Email", "Cidade", "Bairro",
		"Total de Compras", "Última Compra", "Status",
	}

	rows := make([][]interface{}, 0, len(customers))
	for _, c := range customers {
		email := c.Email
		if email == "" {
			email = notAvailable
		}
		lastPurchase := notAvailable
		if c.LastPurchase != nil {
			lastPurchase = c.LastPurchase.Format(dateLayout)
		}
		rows = append(rows, []interface{}{
			c.ID,
			c.Name,
			c.Document,
			c.Phone,
			email,
			c.Address.City,
			c.Address.District,
			c.TotalPurchases.InexactFloat64(),
			lastPurchase,
			statusLabel(c.IsActive),
		})
	}

	return writeReport(w, headers, rows)
}

// WriteProductsReport gera o relatório de produtos
func WriteProductsReport(w io.Writer, products []product.Product) error {
	headers := []string{
		"ID", "Nome", "Categoria", "Preço", "Estoque Atual", "Estoque Mínimo",
		"Unidade", "Fornecedor", "Status",
	}

	rows := make([][]interface{}, 0, len(products))
	for _, p := range products {
		supplier := p.Supplier
		if supplier == "" {
			supplier = notAvailable
		}
		rows = append(rows, []interface{}{
			p.ID,
			p.Name,
			p.Category,
			p.Price.InexactFloat64(),
			p.Stock,
			p.MinStock,
			p.Unit,
			supplier,
			statusLabel(p.IsActive),
		})
	}

	return writeReport(w, headers, rows)
}

// WriteInventoryReport gera o relatório de estoque com o sinalizador de
// reposição
func WriteInventoryReport(w io.Writer, products []product.Product) error {
	headers := []string{
		"ID", "Nome", "Categoria", "Estoque Atual", "Estoque Mínimo",
		"Reposição Necessária", "Status",
	}

	rows := make([][]interface{}, 0, len(products))
	for _, p := range products {
		replenish := "Não"
		if p.LowStock() {
			replenish = "Sim"
		}
		rows = append(rows, []interface{}{
			p.ID,
			p.Name,
			p.Category,
			p.Stock,
			p.MinStock,
			replenish,
			statusLabel(p.IsActive),
		})
	}

	return writeReport(w, headers, rows)
}

func statusLabel(active bool) string {
	if active {
		return "Ativo"
	}
	return "Inativo"
}
