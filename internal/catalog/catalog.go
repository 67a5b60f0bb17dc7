// Package catalog holds the fixed business-category list used to expand
// campaign targets into scrape queries.
package catalog

// Categories is the ordered master list of business categories. The order is
// load-bearing: query partitioning depends on it, so treat the list as
// append-only. The tier groupings reflect rough search popularity and are
// informational only.
var Categories = []string{
	// Tier 1: high-volume local services.
	"Restaurant",
	"Dentist",
	"Plumber",
	"Electrician",
	"HVAC Contractor",
	"Roofing Contractor",
	"Auto Repair Shop",
	"Hair Salon",
	"Real Estate Agency",
	"Insurance Agency",
	"Law Firm",
	"Chiropractor",
	"Veterinarian",
	"Landscaper",
	"General Contractor",
	"Pest Control Service",
	"Cleaning Service",
	"Moving Company",
	"Gym",
	"Physical Therapist",
	"Accountant",
	"Optometrist",
	"Pharmacy",
	"Coffee Shop",
	"Bakery",
	"Bar",
	"Nail Salon",
	"Barber Shop",
	"Car Dealership",
	"Car Wash",
	"Towing Service",
	"Locksmith",
	"Painter",
	"Flooring Contractor",
	"Tree Service",
	"Pool Cleaning Service",
	"Garage Door Repair",
	"Appliance Repair Service",
	"Handyman",
	"Carpet Cleaning Service",
	"Window Cleaning Service",
	"Junk Removal Service",
	"Storage Facility",
	"Daycare Center",
	"Pet Groomer",
	"Pet Boarding Service",
	"Massage Therapist",
	"Dermatologist",
	"Orthodontist",
	"Urgent Care Clinic",

	// Tier 2: mid-volume trades, practices, and retail.
	"Family Doctor",
	"Pediatrician",
	"Cardiologist",
	"Podiatrist",
	"Psychologist",
	"Counselor",
	"Acupuncturist",
	"Dietitian",
	"Home Health Care Service",
	"Assisted Living Facility",
	"Funeral Home",
	"Florist",
	"Jeweler",
	"Furniture Store",
	"Mattress Store",
	"Appliance Store",
	"Hardware Store",
	"Garden Center",
	"Bicycle Shop",
	"Sporting Goods Store",
	"Shoe Store",
	"Clothing Boutique",
	"Bridal Shop",
	"Tailor",
	"Dry Cleaner",
	"Laundromat",
	"Tattoo Shop",
	"Day Spa",
	"Tanning Salon",
	"Yoga Studio",
	"Pilates Studio",
	"Martial Arts School",
	"Dance School",
	"Music School",
	"Tutoring Service",
	"Driving School",
	"Preschool",
	"Photographer",
	"Videographer",
	"Wedding Planner",
	"Event Venue",
	"Catering Service",
	"Food Truck",
	"Pizza Restaurant",
	"Mexican Restaurant",
	"Chinese Restaurant",
	"Italian Restaurant",
	"Sushi Restaurant",
	"Steakhouse",
	"Seafood Restaurant",
	"Breakfast Restaurant",
	"Sandwich Shop",
	"Ice Cream Shop",
	"Juice Bar",
	"Brewery",
	"Winery",
	"Liquor Store",
	"Butcher Shop",
	"Grocery Store",
	"Convenience Store",
	"Gas Station",
	"Tire Shop",
	"Auto Body Shop",
	"Auto Glass Shop",
	"Oil Change Service",
	"Motorcycle Dealer",
	"RV Dealer",
	"Boat Dealer",
	"Auto Parts Store",
	"Car Rental Agency",
	"Taxi Service",
	"Limousine Service",
	"Travel Agency",
	"Hotel",
	"Bed and Breakfast",
	"Campground",
	"Property Management Company",
	"Title Company",
	"Mortgage Broker",
	"Financial Planner",

	// Tier 3: niche and long-tail categories.
	"Tax Preparation Service",
	"Bookkeeping Service",
	"Payroll Service",
	"Notary Public",
	"Bail Bonds Service",
	"Private Investigator",
	"Security Guard Service",
	"Alarm System Company",
	"Fire Protection Service",
	"Electric Sign Company",
	"Sign Shop",
	"Print Shop",
	"Graphic Designer",
	"Web Designer",
	"Marketing Agency",
	"Advertising Agency",
	"Public Relations Firm",
	"Staffing Agency",
	"Employment Agency",
	"Business Consultant",
	"IT Support Company",
	"Computer Repair Service",
	"Cell Phone Repair Shop",
	"Electronics Store",
	"Pawn Shop",
	"Thrift Store",
	"Antique Store",
	"Art Gallery",
	"Picture Framing Shop",
	"Trophy Shop",
	"Vacuum Repair Shop",
	"Sewing Machine Store",
	"Fabric Store",
	"Craft Store",
	"Toy Store",
	"Book Store",
	"Music Store",
	"Record Store",
	"Gun Shop",
	"Archery Range",
	"Golf Course",
	"Bowling Alley",
	"Movie Theater",
	"Escape Room",
	"Arcade",
	"Trampoline Park",
	"Skating Rink",
	"Swimming Pool Contractor",
	"Fence Contractor",
	"Deck Builder",
	"Concrete Contractor",
	"Paving Contractor",
	"Excavating Contractor",
	"Demolition Contractor",
	"Septic System Service",
	"Well Drilling Contractor",
	"Water Damage Restoration Service",
	"Fire Damage Restoration Service",
	"Mold Remediation Service",
	"Chimney Sweep",
	"Gutter Cleaning Service",
	"Pressure Washing Service",
	"Snow Removal Service",
	"Solar Panel Installer",
	"Insulation Contractor",
	"Drywall Contractor",
	"Masonry Contractor",
	"Welding Shop",
	"Machine Shop",
	"Glass Repair Service",
	"Upholstery Shop",
	"Blind and Curtain Store",
	"Cabinet Maker",
	"Countertop Installer",
	"Tile Contractor",
	"Home Inspector",
	"Surveyor",
	"Architect",
	"Interior Designer",
	"Engineering Firm",
	"Environmental Consultant",
}
