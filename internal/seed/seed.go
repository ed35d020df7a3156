package seed

import (
	"github.com/google/uuid"
	"github.com/velocitywheels/wheel-shop-backend/internal/brand"
	"github.com/velocitywheels/wheel-shop-backend/internal/fitment"
	"github.com/velocitywheels/wheel-shop-backend/internal/gallery"
	"github.com/velocitywheels/wheel-shop-backend/internal/testimonial"
	"github.com/velocitywheels/wheel-shop-backend/internal/wheel"
)

// Data is the starter catalog loaded into the in-memory repositories when the
// server runs without a database. Everything except baskets is read-mostly:
// seeded here, appended via the create endpoints, never updated or deleted.
type Data struct {
	Brands       []brand.Brand
	Wheels       []wheel.Wheel
	Fitments     []fitment.Fitment
	Testimonials []testimonial.Testimonial
	Gallery      []gallery.Image
}

// Load builds the sample catalog. IDs are generated fresh on every start; the
// wheels reference the brand ids generated alongside them.
func Load() Data {
	bbs := newBrand("BBS", "Premium German wheel manufacturer")
	oz := newBrand("OZ Racing", "Italian racing heritage")
	enkei := newBrand("Enkei", "Japanese performance wheels")
	rays := newBrand("Rays", "JDM performance specialists")
	vossen := newBrand("Vossen", "Luxury forged wheels")
	hre := newBrand("HRE", "American forged excellence")

	wheels := []wheel.Wheel{
		{
			ID:               uuid.NewString(),
			BrandID:          bbs.ID,
			Name:             "BBS CH-R II",
			Description:      "Satin Black with Stainless Steel Rim",
			Images:           []string{"https://images.example.com/wheels/bbs-ch-r-ii.jpg"},
			Finishes:         []string{"Satin Black", "Silver", "Gold"},
			Sizes:            []string{"18x8", "19x8.5", "20x9"},
			Price:            485,
			PCD:              "5x112",
			OffsetMin:        25,
			OffsetMax:        45,
			CenterBore:       66.6,
			Stock:            12,
			Rating:           4.8,
			ReviewCount:      24,
			IsNew:            true,
			FinanceAvailable: true,
		},
		{
			ID:          uuid.NewString(),
			BrandID:     oz.ID,
			Name:        "OZ Superturismo GT",
			Description: "Race White with Red Lettering",
			Images:      []string{"https://images.example.com/wheels/oz-superturismo-gt.jpg"},
			Finishes:    []string{"Race White", "Matt Black", "Anthracite"},
			Sizes:       []string{"17x7.5", "18x8", "19x8.5"},
			Price:       325,
			PCD:         "5x100",
			OffsetMin:   35,
			OffsetMax:   48,
			CenterBore:  68.0,
			Stock:       3,
			Rating:      4.6,
			ReviewCount: 18,
		},
		{
			ID:               uuid.NewString(),
			BrandID:          vossen.ID,
			Name:             "Vossen CV3-R",
			Description:      "Gloss Graphite Machined",
			Images:           []string{"https://images.example.com/wheels/vossen-cv3-r.jpg"},
			Finishes:         []string{"Gloss Graphite", "Matte Black", "Silver"},
			Sizes:            []string{"19x8.5", "19x9.5", "20x10"},
			Price:            745,
			PCD:              "5x120",
			OffsetMin:        20,
			OffsetMax:        35,
			CenterBore:       72.6,
			Stock:            8,
			Rating:           5.0,
			ReviewCount:      31,
			FinanceAvailable: true,
		},
		{
			ID:               uuid.NewString(),
			BrandID:          hre.ID,
			Name:             "HRE P111SC",
			Description:      "Satin Charcoal",
			Images:           []string{"https://images.example.com/wheels/hre-p111sc.jpg"},
			Finishes:         []string{"Satin Charcoal", "Gloss Black", "Brushed"},
			Sizes:            []string{"20x9", "20x10.5", "21x12"},
			Price:            1240,
			PCD:              "5x114.3",
			OffsetMin:        15,
			OffsetMax:        30,
			CenterBore:       70.3,
			Stock:            0,
			Rating:           5.0,
			ReviewCount:      12,
			FinanceAvailable: true,
		},
		{
			ID:          uuid.NewString(),
			BrandID:     enkei.ID,
			Name:        "Enkei RPF1",
			Description: "Matte Black",
			Images:      []string{"https://images.example.com/wheels/enkei-rpf1.jpg"},
			Finishes:    []string{"Matte Black", "Silver", "White"},
			Sizes:       []string{"17x9", "18x9.5", "18x10.5"},
			Price:       225,
			PCD:         "5x114.3",
			OffsetMin:   12,
			OffsetMax:   38,
			CenterBore:  73.1,
			Stock:       15,
			Rating:      4.7,
			ReviewCount: 67,
		},
		{
			ID:               uuid.NewString(),
			BrandID:          rays.ID,
			Name:             "Rays TE37 Ultra",
			Description:      "Diamond Silver",
			Images:           []string{"https://images.example.com/wheels/rays-te37-ultra.jpg"},
			Finishes:         []string{"Diamond Silver", "Bronze", "White"},
			Sizes:            []string{"18x9.5", "18x10.5"},
			Price:            890,
			PCD:              "5x114.3",
			OffsetMin:        12,
			OffsetMax:        22,
			CenterBore:       73.1,
			Stock:            6,
			Rating:           5.0,
			ReviewCount:      45,
			FinanceAvailable: true,
		},
	}

	fitments := []fitment.Fitment{
		newFitment("BMW", "M3", 2020, "Competition", fitment.WheelSpecs{
			FrontSize: "19x9.5", RearSize: "19x10.5", PCD: "5x120", OffsetRange: "22-35", CenterBore: 72.6,
		}),
		newFitment("BMW", "M3", 2018, "Competition", fitment.WheelSpecs{
			FrontSize: "19x9", RearSize: "19x10", PCD: "5x120", OffsetRange: "25-37", CenterBore: 72.6,
		}),
		newFitment("Audi", "A4", 2019, "2.0T", fitment.WheelSpecs{
			FrontSize: "18x8", RearSize: "18x8", PCD: "5x112", OffsetRange: "35-45", CenterBore: 66.6,
		}),
		newFitment("Volkswagen", "Golf R", 2021, "2.0 TSI", fitment.WheelSpecs{
			FrontSize: "19x8", RearSize: "19x8", PCD: "5x112", OffsetRange: "40-50", CenterBore: 57.1,
		}),
	}

	testimonials := []testimonial.Testimonial{
		newTestimonial("James Mitchell", "London, UK",
			"Exceptional service and quality. The team helped me find the perfect wheels for my BMW and the fitment was flawless. Highly recommended!",
			"BMW M3 Competition"),
		newTestimonial("Sarah Johnson", "Manchester, UK",
			"Outstanding customer service and expertise. They guided me through the entire process and delivered exactly what they promised.",
			"Mercedes-Benz S-Class"),
		newTestimonial("Michael Chen", "Birmingham, UK",
			"Best wheel supplier I've used. Competitive prices, fast delivery, and the quality is top-notch. Will definitely use again.",
			"Porsche 911 GT3"),
	}

	galleryImages := []gallery.Image{
		newGalleryImage("BMW M3 Competition", "BBS CH-R II 19x9.5", "sports",
			"https://images.example.com/gallery/bmw-m3-bbs.jpg"),
		newGalleryImage("Mercedes-Benz S-Class", "Vossen VFS-1 20x10", "luxury",
			"https://images.example.com/gallery/s-class-vossen.jpg"),
		newGalleryImage("Ford F-150 Raptor", "Method 501 VT-Spec 17x8.5", "offroad",
			"https://images.example.com/gallery/raptor-method.jpg"),
		newGalleryImage("Porsche 911 GT3", "OZ Superturismo 19x11", "sports",
			"https://images.example.com/gallery/gt3-oz.jpg"),
	}

	return Data{
		Brands:       []brand.Brand{bbs, oz, enkei, rays, vossen, hre},
		Wheels:       wheels,
		Fitments:     fitments,
		Testimonials: testimonials,
		Gallery:      galleryImages,
	}
}

func newBrand(name, description string) brand.Brand {
	return brand.Brand{ID: uuid.NewString(), Name: name, Description: &description}
}

func newFitment(vehicleMake, model string, year int, engine string, specs fitment.WheelSpecs) fitment.Fitment {
	return fitment.Fitment{
		ID:         uuid.NewString(),
		Make:       vehicleMake,
		Model:      model,
		Year:       year,
		Engine:     &engine,
		WheelSpecs: specs,
	}
}

func newTestimonial(name, location, comment, vehicle string) testimonial.Testimonial {
	return testimonial.Testimonial{
		ID:       uuid.NewString(),
		Name:     name,
		Location: &location,
		Rating:   5,
		Comment:  comment,
		Vehicle:  &vehicle,
	}
}

func newGalleryImage(vehicle, wheelInfo, category, url string) gallery.Image {
	return gallery.Image{
		ID:        uuid.NewString(),
		Vehicle:   vehicle,
		WheelInfo: &wheelInfo,
		URL:       url,
		Category:  category,
	}
}
