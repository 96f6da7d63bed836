package project

var architectureDetails = map[Architecture]string{
	ArchitectureMVVM:   "Model-View-ViewModel (MVVM) architecture for separation of UI and business logic",
	ArchitectureClean:  "Clean Architecture with separate domain, data, and presentation layers",
	ArchitectureMVI:    "Model-View-Intent (MVI) with unidirectional data flow and immutable state",
	ArchitectureMVP:    "Model-View-Presenter (MVP) for separation of presentation logic from views",
	ArchitectureSimple: "Simple architecture for lightweight Android applications",
}

var uiDetails = map[UIToolkit]string{
	UICompose: "Jetpack Compose for modern declarative UI",
	UIXML:     "XML-based layouts with ViewBinding",
}

var networkingDetails = map[Networking]string{
	NetworkingRetrofit: "Retrofit for type-safe HTTP requests",
	NetworkingKtor:     "Ktor Client for multiplatform HTTP networking",
}

var databaseDetails = map[Database]string{
	DatabaseRoom:       "Room for SQLite database access with compile-time verification",
	DatabaseRealm:      "Realm for NoSQL object database",
	DatabaseSQLDelight: "SQLDelight for typesafe SQL with multiplatform support",
}

var diDetails = map[DI]string{
	DIHilt: "Hilt for dependency injection",
	DIKoin: "Koin for lightweight dependency injection",
}

var imageLoadingDetails = map[ImageLoading]string{
	ImageLoadingCoil:  "Coil for image loading (Kotlin-first)",
	ImageLoadingGlide: "Glide for efficient image loading",
}

var asyncDetails = map[Async]string{
	AsyncCoroutines: "Kotlin Coroutines for asynchronous programming",
	AsyncRxJava:     "RxJava for reactive programming",
}

// ArchitectureDetail returns the readme line for the configured architecture.
// Unknown values fall back to the MVVM description.
func ArchitectureDetail(a Architecture) string {
	if d, ok := architectureDetails[a]; ok {
		return d
	}
	return architectureDetails[ArchitectureMVVM]
}

// LibraryDetails returns one readme line per selected library, in
// UI, networking, database, DI, image loading, async order.
// Choices set to none or to an unknown value contribute nothing.
func LibraryDetails(c Config) []string {
	var lines []string
	add := func(s string, ok bool) {
		if ok {
			lines = append(lines, s)
		}
	}

	d, ok := uiDetails[c.UI]
	add(d, ok)
	d, ok = networkingDetails[c.Networking]
	add(d, ok)
	d, ok = databaseDetails[c.Database]
	add(d, ok)
	d, ok = diDetails[c.DI]
	add(d, ok)
	d, ok = imageLoadingDetails[c.ImageLoading]
	add(d, ok)
	d, ok = asyncDetails[c.Async]
	add(d, ok)
	return lines
}
