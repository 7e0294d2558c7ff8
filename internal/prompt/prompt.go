package prompt

// Sent to the language model verbatim.
const header = `You have been provided with flight data in JSON format. Please analyze the data and provide a comprehensive response including the following details:

### 1. **Flight Overview** 📊
   - **Total Number of Flights**: Indicate the total number of flight options available based on the search criteria.
   - **Flight Availability Insights**: Provide an overview of flight availability, such as any notable peaks or limitations in flight options.

### 2. **Detailed Flight Comparison** 🔍
   - **Price Analysis** 💵:
     - **Price Range**: Specify the lowest, highest, and average prices for the flights.
     - **Price Patterns**: Identify any patterns or anomalies in flight prices, such as significant price variations based on time or airline.

   - **Duration Analysis** ⏱️:
     - **Duration Range**: Provide the shortest, longest, and average flight durations.
     - **Duration Patterns**: Highlight any patterns or anomalies in flight durations, such as longer layovers or unusually short flights.

   - **Carbon Emissions Analysis** 🌍:
     - **Emissions Range**: Specify the lowest, highest, and average carbon emissions for the flights.
     - **Emissions Patterns**: Point out any patterns or anomalies in carbon emissions, including variations by airline or flight duration.

### 3. **Flight Data in DataFrame Format** 📝
   - **DataFrame Columns**:
     - **Departure Airport**: Name and exact time of departure.
     - **Arrival Airport**: Name and exact time of arrival.
     - **Airline**: Name of the airline operating the flight.
     - **Flight Duration**: Duration of the flight in minutes.
     - **Price**: Price of the flight in the selected currency.
     - **Carbon Emissions**: Carbon emissions for this flight.

   - **Instructions**:
     - Convert the flight data into a structured DataFrame format. Each flight should be represented as a row in the DataFrame with the columns specified above.
     - Ensure that the DataFrame is well-organized and easy to read.
     - Provide the DataFrame in a format that can be easily converted into a CSV or Excel file, including headers for each column.

### 4. **Summary and Recommendations** 📋
   - **Best Value Flights**: Identify flights that offer the best value considering price, duration, and emissions. Highlight any particularly good or bad options.
   - **Cheapest Flight** 💸:
     - **Details**: Provide details of the cheapest flight including the departure and arrival airports, airline, flight duration, price, and carbon emissions.
     - **Cheapest Flight DataFrame**: Present the details of the cheapest flight in a structured DataFrame format with columns: Departure Airport, Departure Time, Arrival Airport, Arrival Time, Airline, Flight Duration, Price, Carbon Emissions.
   - **Environmental Impact**: Summarize the environmental impact of the flights and recommend options that minimize carbon emissions.

### 5. **Travel Hack and Tips** 🛠️✈️
   - **Travel Tips**: Provide additional tips for choosing flights, such as the best times to book or advice on reducing carbon footprint.
   - **Travel Hack** 🛠️: As a travel professional, offer a specific travel hack for this journey to help the traveler save money, reduce travel time, or enhance their travel experience.

### 6. **Destination Suggestions** 🌎
   - **Places to Visit**: Based on the arrival location, suggest a few must-visit places or attractions. Include a mix of popular tourist spots and hidden gems to enhance the traveler's experience.

### Note:
   - If no flight data is available, suggest checking for different dates or adjusting the search criteria to find available flight options.

Here is the flight data in JSON format:
`

const footer = `

Please ensure that the data is presented in a DataFrame with the following columns: No., Departure Airport, Departure Time, Arrival Airport, Arrival Time, Airline, Flight Duration, Price. The output should be clear and easy to interpret, and the DataFrame should not include any code.`

// Heading is the first line of every analysis prompt.
const Heading = "You have been provided with flight data in JSON format."

// Build embeds the serialized flight-search result into the analysis
// instructions.
func Build(flightDataJSON string) string {
	return header + flightDataJSON + footer
}
