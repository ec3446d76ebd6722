// seed_catalog genera el script SQL que puebla el catálogo de categorías y servicios
// a partir de un XML (catalogo.xml, UTF-8 o ISO-8859-1).
//
// Uso: go run ./cmd/seed_catalog [ruta/catalogo.xml]
// Por defecto lee cmd/seed_catalog/catalogo.xml.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_catalog.sql
//
// Formato:
//
//	<catalogo>
//	  <categoria nome="Desenvolvimento Web">
//	    <servico nome="Site institucional" preco="2500.00">Descrição...</servico>
//	  </categoria>
//	</catalogo>
//
// preco ausente = precio a definir por proyecto (base_price NULL).
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type category struct {
	ID       uuid.UUID
	Name     string
	Services []service
}

type service struct {
	ID          uuid.UUID
	Name        string
	Description string
	BasePrice   decimal.NullDecimal
}

func main() {
	moduleRoot := findModuleRoot()
	xmlPath := filepath.Join(moduleRoot, "cmd", "seed_catalog", "catalogo.xml")
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}
	f, err := os.Open(xmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir XML: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	cats, err := parseCatalog(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer catálogo: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, cats); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}

	n := 0
	for _, c := range cats {
		n += len(c.Services)
	}
	fmt.Printf("Generado %s: %d categorías, %d servicios\n", outPath, len(cats), n)
}

// parseCatalog lee el XML. Los IDs se derivan del nombre (UUID v5) para que
// regenerar el script no cambie las claves ya referenciadas por orçamentos.
func parseCatalog(r io.Reader) ([]category, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") {
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		}
		return input, nil
	}
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("decodificar XML: %w", err)
	}
	root := doc.SelectElement("catalogo")
	if root == nil {
		return nil, fmt.Errorf("falta el elemento <catalogo>")
	}

	var cats []category
	seen := make(map[string]bool)
	for _, ce := range root.SelectElements("categoria") {
		name := strings.TrimSpace(ce.SelectAttrValue("nome", ""))
		if name == "" {
			continue
		}
		if seen[name] {
			return nil, fmt.Errorf("categoría duplicada: %s", name)
		}
		seen[name] = true

		cat := category{ID: stableID("category", name), Name: name}
		for _, se := range ce.SelectElements("servico") {
			sname := strings.TrimSpace(se.SelectAttrValue("nome", ""))
			if sname == "" {
				continue
			}
			svc := service{
				ID:          stableID("service", name+"/"+sname),
				Name:        sname,
				Description: strings.TrimSpace(se.Text()),
			}
			if p := strings.TrimSpace(se.SelectAttrValue("preco", "")); p != "" {
				d, err := decimal.NewFromString(p)
				if err != nil || !d.IsPositive() {
					return nil, fmt.Errorf("preço inválido em %q: %q", sname, p)
				}
				svc.BasePrice = decimal.NullDecimal{Decimal: d, Valid: true}
			}
			cat.Services = append(cat.Services, svc)
		}
		cats = append(cats, cat)
	}
	return cats, nil
}

func stableID(kind, name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("labora:"+kind+":"+name))
}

// writeSQL escribe INSERTs idempotentes (ON CONFLICT actualiza nombre, descripción y precio).
func writeSQL(w io.Writer, cats []category) error {
	var b strings.Builder
	b.WriteString("-- Catálogo de categorías y servicios\n")
	b.WriteString("-- Generado por cmd/seed_catalog\n\n")

	if len(cats) > 0 {
		b.WriteString("-- 1. Categorías\n")
		b.WriteString("INSERT INTO service_categories (id, name) VALUES\n")
		for i, c := range cats {
			sep := ","
			if i == len(cats)-1 {
				sep = ""
			}
			fmt.Fprintf(&b, "  ('%s', '%s')%s\n", c.ID, escapeSQL(c.Name), sep)
		}
		b.WriteString("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name;\n\n")
	}

	b.WriteString("-- 2. Servicios\n")
	for _, c := range cats {
		for _, s := range c.Services {
			price := "NULL"
			if s.BasePrice.Valid {
				price = s.BasePrice.Decimal.StringFixed(2)
			}
			fmt.Fprintf(&b, "INSERT INTO services (id, category_id, name, description, base_price)\n")
			fmt.Fprintf(&b, "VALUES ('%s', '%s', '%s', '%s', %s)\n",
				s.ID, c.ID, escapeSQL(s.Name), escapeSQL(s.Description), price)
			b.WriteString("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description, base_price = EXCLUDED.base_price;\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
